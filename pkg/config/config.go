package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"menubox/pkg/css"
)

// EnvPrefix prefixes every environment override, e.g. MENUBOX_VIEWPORT_WIDTH.
const EnvPrefix = "MENUBOX"

// Config holds the settings shared by every menubox command.
type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Fonts    FontsConfig    `mapstructure:"fonts" yaml:"fonts"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

// ViewportConfig is the size of the screen scenes are laid out on.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// FontsConfig sets the root em and the font files used for text.
type FontsConfig struct {
	RootSize float64 `mapstructure:"root_size" yaml:"root_size"`
	Regular  string  `mapstructure:"regular" yaml:"regular"`
	Bold     string  `mapstructure:"bold" yaml:"bold"`
}

// RenderConfig controls the rasteriser.
type RenderConfig struct {
	Outlines   bool   `mapstructure:"outlines" yaml:"outlines"`
	Background string `mapstructure:"background" yaml:"background"`
}

// LoggerConfig configures the global zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Viewport --
	v.SetDefault("viewport.width", 1920)
	v.SetDefault("viewport.height", 1080)

	// -- Fonts --
	v.SetDefault("fonts.root_size", 16)
	v.SetDefault("fonts.regular", "")
	v.SetDefault("fonts.bold", "")

	// -- Render --
	v.SetDefault("render.outlines", false)
	v.SetDefault("render.background", "#202020")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "menubox")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads an optional config file and MENUBOX_ environment variables on
// top of the defaults. An empty path looks for ./menubox.yaml and carries on
// without it.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("menubox")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates a populated viper instance.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Fonts.RootSize <= 0 {
		return fmt.Errorf("fonts.root_size must be positive")
	}
	if _, ok := css.ParseColor(c.Render.Background); !ok {
		return fmt.Errorf("render.background %q is not a colour", c.Render.Background)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}

// BackgroundColor returns the parsed render background.
func (c *Config) BackgroundColor() css.Color {
	col, _ := css.ParseColor(c.Render.Background)
	return col
}
