package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/dspfmodel/internal/ctxlog"
	"github.com/vk/dspfmodel/internal/screen"
)

// Settings is the resolved tool configuration.
type Settings struct {
	Extensions  []string
	LogLevel    string
	LogFormat   string
	Debounce    time.Duration
	DefaultSize screen.Size
}

// Default returns the settings used when no settings file is given.
func Default() *Settings {
	return &Settings{
		Extensions:  []string{".dspf", ".dds"},
		LogLevel:    "info",
		LogFormat:   "text",
		Debounce:    150 * time.Millisecond,
		DefaultSize: screen.DS3,
	}
}

// hclSettingsFile is the top-level structure of a settings file.
type hclSettingsFile struct {
	Settings *hclSettings `hcl:"settings,block"`
}

// hclSettings is the decode target for the settings block. DefaultSize is
// kept as a cty value so the file can use either an inline object or one
// of the display.* geometry variables.
type hclSettings struct {
	Extensions  []string  `hcl:"extensions,optional"`
	LogLevel    string    `hcl:"log_level,optional"`
	LogFormat   string    `hcl:"log_format,optional"`
	DebounceMS  int       `hcl:"debounce_ms,optional"`
	DefaultSize cty.Value `hcl:"default_size,optional"`
}

// sizeValue mirrors the cty object shape of a display geometry.
type sizeValue struct {
	Rows  int    `cty:"rows"`
	Cols  int    `cty:"cols"`
	Label string `cty:"label"`
}

// Load reads and decodes a settings file over the defaults. An empty path
// returns the defaults unchanged; a missing or malformed file is a
// startup error.
func Load(ctx context.Context, path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var parsed hclSettingsFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	if parsed.Settings == nil {
		return settings, nil
	}

	s := parsed.Settings
	if len(s.Extensions) > 0 {
		settings.Extensions = s.Extensions
	}
	if s.LogLevel != "" {
		settings.LogLevel = s.LogLevel
	}
	if s.LogFormat != "" {
		settings.LogFormat = s.LogFormat
	}
	if s.DebounceMS > 0 {
		settings.Debounce = time.Duration(s.DebounceMS) * time.Millisecond
	}
	if s.DefaultSize != cty.NilVal && !s.DefaultSize.IsNull() {
		var sv sizeValue
		if err := gocty.FromCtyValue(s.DefaultSize, &sv); err != nil {
			return nil, fmt.Errorf("invalid default_size in %s: %w", path, err)
		}
		settings.DefaultSize = screen.Size{Rows: sv.Rows, Cols: sv.Cols, Label: sv.Label}
	}

	logger.Debug("Settings loaded.", "extensions", settings.Extensions, "default_size", settings.DefaultSize.String())
	return settings, nil
}

// evalContext exposes the standard display geometries to settings
// expressions as `display.ds3` and `display.ds4`.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"display": cty.ObjectVal(map[string]cty.Value{
				"ds3": geometryVal(screen.DS3),
				"ds4": geometryVal(screen.DS4),
			}),
		},
	}
}

func geometryVal(s screen.Size) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"rows":  cty.NumberIntVal(int64(s.Rows)),
		"cols":  cty.NumberIntVal(int64(s.Cols)),
		"label": cty.StringVal(s.Label),
	})
}
