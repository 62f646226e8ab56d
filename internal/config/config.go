// internal/config/config.go
package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Transform() TransformConfig
	Output() OutputConfig

	// Transform Setters
	SetTransformSkipPosition(bool)
	SetTransformSkipResolve(bool)
	SetTransformBandConcurrency(int)

	// Output Setters
	SetOutputPath(string)
	SetOutputIndent(bool)
}

// Config holds the entire application configuration. Access goes through
// the Interface getters so call sites stay mockable.
type Config struct {
	Log    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Engine TransformConfig `mapstructure:"transform" yaml:"transform"`
	Render OutputConfig    `mapstructure:"output" yaml:"output"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig       { return c.Log }
func (c *Config) Transform() TransformConfig { return c.Engine }
func (c *Config) Output() OutputConfig       { return c.Render }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetTransformSkipPosition(b bool)   { c.Engine.SkipPosition = b }
func (c *Config) SetTransformSkipResolve(b bool)    { c.Engine.SkipResolve = b }
func (c *Config) SetTransformBandConcurrency(n int) { c.Engine.BandConcurrency = n }
func (c *Config) SetOutputPath(p string)            { c.Render.Path = p }
func (c *Config) SetOutputIndent(b bool)            { c.Render.Indent = b }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// TransformConfig tunes the layout pipeline.
type TransformConfig struct {
	SkipPosition    bool `mapstructure:"skip_position" yaml:"skip_position"`
	SkipResolve     bool `mapstructure:"skip_resolve" yaml:"skip_resolve"`
	BandConcurrency int  `mapstructure:"band_concurrency" yaml:"band_concurrency"`
}

// OutputConfig controls where and how transformed trees are written.
type OutputConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format"`
	Indent bool   `mapstructure:"indent" yaml:"indent"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "folio")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Transform --
	v.SetDefault("transform.skip_position", false)
	v.SetDefault("transform.skip_resolve", false)
	v.SetDefault("transform.band_concurrency", 4)

	// -- Output --
	v.SetDefault("output.path", "")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.indent", true)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Log files and output paths may use shell-style home references.
	expanded, err := homedir.Expand(cfg.Log.LogFile)
	if err != nil {
		return nil, fmt.Errorf("invalid logger.log_file: %w", err)
	}
	cfg.Log.LogFile = expanded

	expanded, err = homedir.Expand(cfg.Render.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid output.path: %w", err)
	}
	cfg.Render.Path = expanded

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Engine.BandConcurrency <= 0 {
		return fmt.Errorf("transform.band_concurrency must be a positive integer")
	}
	if c.Render.Format != "json" {
		return fmt.Errorf("output.format %q is not supported, only \"json\" is", c.Render.Format)
	}
	return nil
}
