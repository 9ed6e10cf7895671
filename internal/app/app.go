package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dspfmodel/internal/config"
	"github.com/vk/dspfmodel/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and loaded
// settings. Rendered output goes to outW, logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := config.Load(ctx, appConfig.SettingsPath)
	if err != nil {
		// A failure to load settings is a fatal startup error.
		panic(fmt.Errorf("failed to load settings: %w", err))
	}

	// CLI flags win over the settings file; unset flags fall back to it.
	if appConfig.LogLevel == "" || appConfig.LogFormat == "" {
		level, format := appConfig.LogLevel, appConfig.LogFormat
		if level == "" {
			level = settings.LogLevel
		}
		if format == "" {
			format = settings.LogFormat
		}
		logger = newLogger(level, format, logW)
	}
	logger.Debug("Settings resolved.", "extensions", settings.Extensions)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		settings: settings,
	}
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}
