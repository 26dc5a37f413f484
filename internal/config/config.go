package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/render"
)

// Config holds all gotri configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Editor  EditorConfig  `yaml:"editor"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures image output and the initial viewport.
type RenderConfig struct {
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	PxPerUnit float64      `yaml:"px_per_unit"`
	AnchorX   float64      `yaml:"anchor_x"`
	AnchorY   float64      `yaml:"anchor_y"`
	Grid      bool         `yaml:"grid"`
	Construct bool         `yaml:"construct"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds hex colors. Empty values keep the built-in style.
type ColorsConfig struct {
	Background string `yaml:"background,omitempty"`
	Grid       string `yaml:"grid,omitempty"`
	Edge       string `yaml:"edge,omitempty"`
	Vertex     string `yaml:"vertex,omitempty"`
	Label      string `yaml:"label,omitempty"`
}

// EditorConfig configures the interactive session.
type EditorConfig struct {
	Snap45      bool    `yaml:"snap45"`
	ShowAlt     bool    `yaml:"show_alt"`
	RoundPlaces int     `yaml:"round_places"`
	DefaultA    float64 `yaml:"default_a"`
	DefaultB    float64 `yaml:"default_b"`
	DefaultC    float64 `yaml:"default_c"`
}

// WatchConfig configures file watching.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:     800,
			Height:    600,
			PxPerUnit: render.DefaultScale,
			AnchorX:   render.DefaultAnchor.X,
			AnchorY:   render.DefaultAnchor.Y,
		},
		Editor: EditorConfig{
			RoundPlaces: 3,
			DefaultA:    100,
			DefaultB:    140,
			DefaultC:    160,
		},
		Watch: WatchConfig{
			Debounce: "200ms",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Values that do
// not parse are ignored.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("GOTRI_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v, err := strconv.ParseFloat(os.Getenv("GOTRI_PX_PER_UNIT"), 64); err == nil {
		c.Render.PxPerUnit = v
	}
	if v, err := strconv.Atoi(os.Getenv("GOTRI_WIDTH")); err == nil {
		c.Render.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv("GOTRI_HEIGHT")); err == nil {
		c.Render.Height = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d: width and height must be positive", c.Render.Width, c.Render.Height)
	}
	if c.Render.PxPerUnit <= 0 {
		return fmt.Errorf("invalid px_per_unit %v: must be positive", c.Render.PxPerUnit)
	}
	if c.Editor.RoundPlaces < 0 || c.Editor.RoundPlaces > 12 {
		return fmt.Errorf("invalid round_places %d: must be between 0 and 12", c.Editor.RoundPlaces)
	}
	if c.Editor.DefaultA <= 0 || c.Editor.DefaultB <= 0 || c.Editor.DefaultC <= 0 {
		return fmt.Errorf("default sides must be positive")
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses the configured log level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// GetDebounce returns the watch debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// Viewport returns the configured initial viewport.
func (c *Config) Viewport() render.Viewport {
	return render.Viewport{
		Scale:  c.Render.PxPerUnit,
		Anchor: geometry.NewVector2(c.Render.AnchorX, c.Render.AnchorY),
	}
}

// DefaultSides returns the side lengths a new session starts with.
func (c *Config) DefaultSides() geometry.Sides {
	return geometry.NewSides(c.Editor.DefaultA, c.Editor.DefaultB, c.Editor.DefaultC)
}

// Style returns the render style with configured size and colors applied.
func (c *Config) Style() render.Style {
	style := render.DefaultStyle()
	style.Width = c.Render.Width
	style.Height = c.Render.Height

	colors := c.Render.Colors
	for _, o := range []struct {
		value  string
		target *string
	}{
		{colors.Background, &style.Background},
		{colors.Grid, &style.GridColor},
		{colors.Edge, &style.EdgeColor},
		{colors.Vertex, &style.VertexColor},
		{colors.Label, &style.LabelColor},
	} {
		if o.value != "" {
			*o.target = o.value
		}
	}
	return style
}
