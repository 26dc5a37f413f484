package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/philipparndt/gotri/pkg/render"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GOTRI_LOG_LEVEL", "GOTRI_PX_PER_UNIT", "GOTRI_WIDTH", "GOTRI_HEIGHT"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800, cfg.Render.Width)
	assert.Equal(t, render.DefaultScale, cfg.Render.PxPerUnit)
	assert.Equal(t, 3, cfg.Editor.RoundPlaces)
	assert.False(t, cfg.Render.Grid)
	assert.False(t, cfg.Editor.ShowAlt)
	assert.Equal(t, 200*time.Millisecond, cfg.GetDebounce())
	assert.NoError(t, cfg.Validate())

	sides := cfg.DefaultSides()
	assert.Equal(t, []float64{100, 140, 160}, []float64{sides.A, sides.B, sides.C})
	assert.Equal(t, render.NewViewport(), cfg.Viewport())
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "gotri.yaml")

	cfg := DefaultConfig()
	cfg.Render.Width = 1024
	cfg.Render.Colors.Edge = "#ff0000"
	cfg.Editor.Snap45 = true
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "#ff0000", loaded.Style().EdgeColor)
	assert.Equal(t, render.DefaultStyle().VertexColor, loaded.Style().VertexColor)
}

func TestLoadPartialFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "gotri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  px_per_unit: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Render.PxPerUnit)
	assert.Equal(t, 600, cfg.Render.Height, "unset keys keep defaults")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GOTRI_LOG_LEVEL", "warn")
	t.Setenv("GOTRI_PX_PER_UNIT", "3.5")
	t.Setenv("GOTRI_WIDTH", "640")
	t.Setenv("GOTRI_HEIGHT", "not-a-number")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 3.5, cfg.Render.PxPerUnit)
	assert.Equal(t, 640, cfg.Render.Width)
	assert.Equal(t, 600, cfg.Render.Height)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
		{"negative height", func(c *Config) { c.Render.Height = -1 }},
		{"zero scale", func(c *Config) { c.Render.PxPerUnit = 0 }},
		{"round places", func(c *Config) { c.Editor.RoundPlaces = 13 }},
		{"default side", func(c *Config) { c.Editor.DefaultB = 0 }},
		{"debounce", func(c *Config) { c.Watch.Debounce = "soon" }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestZapLevel(t *testing.T) {
	level, err := LoggingConfig{Level: "debug"}.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}
