package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

const (
	DefaultWidth      = 1200
	DefaultHeight     = 800
	DefaultMinWidth   = 400
	DefaultMinHeight  = 300
	DefaultBackground = "#1e1e1e"
	DefaultResizeStep = 0.1
	DefaultInstanceID = "go-picview-6f1c3a52"
)

type Config struct {
	Window   WindowConfig   `yaml:"window" mapstructure:"window"`
	DevTools DevToolsConfig `yaml:"devtools" mapstructure:"devtools"`
	Instance InstanceConfig `yaml:"instance" mapstructure:"instance"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

type WindowConfig struct {
	Title      string  `yaml:"title" mapstructure:"title"`
	Width      int     `yaml:"width" mapstructure:"width"`
	Height     int     `yaml:"height" mapstructure:"height"`
	MinWidth   int     `yaml:"min_width" mapstructure:"min_width"`
	MinHeight  int     `yaml:"min_height" mapstructure:"min_height"`
	Background string  `yaml:"background" mapstructure:"background"` // "#rrggbb"
	Frameless  bool    `yaml:"frameless" mapstructure:"frameless"`
	ResizeStep float64 `yaml:"resize_step" mapstructure:"resize_step"`

	// KeepResident hides the window on close and keeps the process running
	KeepResident bool `yaml:"keep_resident" mapstructure:"keep_resident"`
}

type DevToolsConfig struct {
	Enabled       bool `yaml:"enabled" mapstructure:"enabled"`
	OpenOnStartup bool `yaml:"open_on_startup" mapstructure:"open_on_startup"`
}

// InstanceConfig controls single-instance locking. Multiple windows and
// processes are allowed unless Single is set.
type InstanceConfig struct {
	Single bool   `yaml:"single" mapstructure:"single"`
	ID     string `yaml:"id" mapstructure:"id"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File enables a rotating log file in addition to stdout
	File       string `yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
}

func Load() (*Config, error) {
	// Uses the global viper instance configured by the root command
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file, flag or env var overrides anything.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Picview",
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			MinWidth:   DefaultMinWidth,
			MinHeight:  DefaultMinHeight,
			Background: DefaultBackground,
			Frameless:  true,
			ResizeStep: DefaultResizeStep,
		},
		Instance: InstanceConfig{
			ID: DefaultInstanceID,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

func SetDefaults() {
	viper.SetDefault("window.title", "Picview")
	viper.SetDefault("window.width", DefaultWidth)
	viper.SetDefault("window.height", DefaultHeight)
	viper.SetDefault("window.min_width", DefaultMinWidth)
	viper.SetDefault("window.min_height", DefaultMinHeight)
	viper.SetDefault("window.background", DefaultBackground)
	viper.SetDefault("window.frameless", true)
	viper.SetDefault("window.resize_step", DefaultResizeStep)
	viper.SetDefault("window.keep_resident", false)
	viper.SetDefault("devtools.enabled", false)
	viper.SetDefault("devtools.open_on_startup", false)
	viper.SetDefault("instance.single", false)
	viper.SetDefault("instance.id", DefaultInstanceID)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.max_size_mb", 10)
	viper.SetDefault("logging.max_backups", 5)
	viper.SetDefault("logging.max_age_days", 30)
}

func (c *Config) Validate() error {
	w := c.Window
	if w.MinWidth <= 0 || w.MinHeight <= 0 {
		return fmt.Errorf("window.min_width and window.min_height must be positive")
	}
	if w.Width < w.MinWidth {
		return fmt.Errorf("window.width %d is below window.min_width %d", w.Width, w.MinWidth)
	}
	if w.Height < w.MinHeight {
		return fmt.Errorf("window.height %d is below window.min_height %d", w.Height, w.MinHeight)
	}
	if w.ResizeStep <= 0 || w.ResizeStep >= 1 {
		return fmt.Errorf("window.resize_step must be between 0 and 1, got %v", w.ResizeStep)
	}
	if _, _, _, err := c.BackgroundRGB(); err != nil {
		return err
	}
	if w.KeepResident && !c.Instance.Single {
		return fmt.Errorf("window.keep_resident requires instance.single, a hidden window is reopened by launching again")
	}
	if c.Instance.Single && c.Instance.ID == "" {
		return fmt.Errorf("instance.id is required when instance.single is set")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported logging.format: %s (supported: text, json)", c.Logging.Format)
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("logging.max_size_mb must be positive when logging.file is set")
	}
	return nil
}

// BackgroundRGB parses Window.Background as a hex colour.
func (c *Config) BackgroundRGB() (r, g, b uint8, err error) {
	col, err := colorful.Hex(c.Window.Background)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid window.background %q: %w", c.Window.Background, err)
	}
	r, g, b = col.RGB255()
	return r, g, b, nil
}
