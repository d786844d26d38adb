package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Connectivity adapter variants.
const (
	VariantBluez          = "bluez"
	VariantNetworkManager = "networkmanager"
)

type Config struct {
	// Variant selects the connectivity adapter and its color scheme.
	Variant string

	// Use24h is the hour format used when the desktop does not report one.
	Use24h bool

	// Locale is a POSIX locale (de_DE.UTF-8) or BCP 47 tag used for
	// month abbreviations. Empty means take it from the environment.
	Locale string

	LogLevel string
	LogFile  string

	// Width and Height are the screen bounds in pixels.
	Width  int
	Height int
}

// DefaultPaths returns the directories searched for watchface.yaml.
func DefaultPaths() []string {
	paths := []string{}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "watchface"))
	}
	return append(paths, ".")
}

// Load reads watchface.yaml from the first of paths that has one, then
// applies WATCHFACE_* environment overrides. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	homeDir, _ := os.UserHomeDir()
	v.SetDefault("platform.variant", VariantNetworkManager)
	v.SetDefault("clock.24h", true)
	v.SetDefault("locale", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(homeDir, "watchface.log"))
	v.SetDefault("screen.width", 144)
	v.SetDefault("screen.height", 168)

	v.SetConfigName("watchface")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("WATCHFACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Variant:  strings.ToLower(v.GetString("platform.variant")),
		Use24h:   v.GetBool("clock.24h"),
		Locale:   v.GetString("locale"),
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
		Width:    v.GetInt("screen.width"),
		Height:   v.GetInt("screen.height"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Variant {
	case VariantBluez, VariantNetworkManager:
	default:
		return fmt.Errorf("unknown platform variant %q", c.Variant)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Width, c.Height)
	}
	return nil
}
