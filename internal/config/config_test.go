package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "watchface.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Variant != VariantNetworkManager {
		t.Errorf("variant = %q, want %q", cfg.Variant, VariantNetworkManager)
	}
	if !cfg.Use24h {
		t.Errorf("expected 24h default")
	}
	if cfg.Width != 144 || cfg.Height != 168 {
		t.Errorf("screen = %dx%d, want 144x168", cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
platform:
  variant: BlueZ
clock:
  24h: false
locale: de_DE.UTF-8
screen:
  width: 200
  height: 228
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Variant != VariantBluez {
		t.Errorf("variant = %q, want %q", cfg.Variant, VariantBluez)
	}
	if cfg.Use24h {
		t.Errorf("expected 12h from file")
	}
	if cfg.Locale != "de_DE.UTF-8" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if cfg.Width != 200 || cfg.Height != 228 {
		t.Errorf("screen = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WATCHFACE_PLATFORM_VARIANT", "bluez")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != VariantBluez {
		t.Errorf("variant = %q, want %q", cfg.Variant, VariantBluez)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown variant": "platform:\n  variant: pebble\n",
		"zero width":      "screen:\n  width: 0\n",
		"broken yaml":     "platform: [\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
