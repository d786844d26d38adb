package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/face"
	"github.com/haakonleg/watchface-sway/internal/config"
	"github.com/haakonleg/watchface-sway/internal/logger"
	"github.com/haakonleg/watchface-sway/ipc"
	"github.com/haakonleg/watchface-sway/platform"
	"github.com/haakonleg/watchface-sway/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "watchface: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPaths()...)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, log, os.Stdout); err != nil {
		log.Errorw("startup failed", "err", err)
		return err
	}
	return nil
}

// serve shows the watch face on out until ctx is cancelled or sway shuts
// down. Every host connection it opens is closed before it returns.
func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, out io.Writer) error {
	sway, err := ipc.Connect(log)
	if err != nil {
		log.Warnw("sway ipc unavailable", "err", err)
	} else {
		defer sway.Close()
	}

	systemBus, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("connect to system bus: %w", err)
	}
	defer systemBus.Close()

	app := ui.NewApp(out, screenBounds(ctx, cfg, sway, log), log)

	connectivity, err := platform.NewConnectivity(cfg.Variant, systemBus, app, log)
	if err != nil {
		return err
	}

	if sway != nil {
		go func() {
			if err := sway.WaitShutdown(ctx); err != nil && ctx.Err() == nil {
				log.Warnw("lost sway ipc connection", "err", err)
				return
			}
			log.Infow("sway is shutting down")
			app.Quit()
		}()
	}

	var hourFormat platform.HourFormatSource = platform.StaticHourFormat(cfg.Use24h)
	if sessionBus, err := dbus.ConnectSessionBus(); err != nil {
		log.Warnw("session bus unavailable, using configured hour format", "err", err)
	} else {
		defer sessionBus.Close()
		hourFormat = platform.NewPortalHourFormat(sessionBus, cfg.Use24h, log)
	}

	watchFace := face.New(
		platform.NewClock(app, hourFormat, log),
		platform.NewUPowerBattery(systemBus, app, log),
		connectivity,
		platform.LocaleMonths(cfg.Locale),
		app.Fonts(),
		log,
	)

	window := watchFace.NewWindow()
	app.Push(window)

	if err := app.Run(ctx); err != nil {
		log.Errorw("event loop stopped", "err", err)
	}

	window.Destroy()
	return nil
}

// screenBounds clamps the configured screen to the focused output
func screenBounds(ctx context.Context, cfg *config.Config, sway *ipc.SwayIpcClient, log *logger.Logger) ui.Rect {
	bounds := ui.NewRect(0, 0, cfg.Width, cfg.Height)
	if sway == nil {
		return bounds
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	output, err := sway.FocusedOutput(ctx)
	if err != nil {
		log.Warnw("failed to query outputs", "err", err)
		return bounds
	}

	if output.Width > 0 && bounds.Size.W > output.Width {
		bounds.Size.W = output.Width
	}
	if output.Height > 0 && bounds.Size.H > output.Height {
		bounds.Size.H = output.Height
	}
	return bounds
}
