package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/dspfmodel/internal/ctxlog"
	"github.com/vk/dspfmodel/internal/dds"
	"github.com/vk/dspfmodel/internal/fsutil"
	"github.com/vk/dspfmodel/internal/render"
)

// Run executes the main application logic: discover display-file sources,
// parse each one, and render the structure to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindByExtensions(a.config.SourcePath, a.settings.Extensions)
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No display-file sources found in path.",
			"path", a.config.SourcePath, "extensions", a.settings.Extensions)
		return nil
	}
	a.logger.Debug("Source files discovered.", "count", len(files))

	for _, file := range files {
		if err := a.renderFile(ctx, file); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) renderFile(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	model := dds.ParseWithDefault(string(text), a.settings.DefaultSize)
	logger.Info("Parsed display-file source.",
		"file", path,
		"lines", model.Lines,
		"records", model.Catalog.Len(),
		"default_size", model.DefaultSize.String())

	name := filepath.Base(path)
	switch a.config.Format {
	case "json":
		err = render.JSON(a.outW, name, model)
	default:
		err = render.Outline(a.outW, name, model)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}
