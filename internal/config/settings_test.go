package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dspfmodel/internal/screen"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, screen.DS3, s.DefaultSize)
	assert.Equal(t, 150*time.Millisecond, s.Debounce)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
settings {
  extensions  = [".dspf"]
  log_level   = "debug"
  debounce_ms = 300
}
`)
	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{".dspf"}, s.Extensions)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 300*time.Millisecond, s.Debounce)
	// Untouched settings keep their defaults.
	assert.Equal(t, "text", s.LogFormat)
	assert.Equal(t, screen.DS3, s.DefaultSize)
}

func TestLoad_DefaultSizeFromDisplayVariable(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
settings {
  default_size = display.ds4
}
`)
	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, screen.Size{Rows: 27, Cols: 132, Label: "*DS4"}, s.DefaultSize)
}

func TestLoad_DefaultSizeInlineObject(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
settings {
  default_size = { rows = 25, cols = 80, label = "*DS3" }
}
`)
	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, screen.Size{Rows: 25, Cols: 80, Label: "*DS3"}, s.DefaultSize)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `settings { extensions = [`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "")
	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
