// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Humanoid() HumanoidConfig

	// Browser Setters
	SetBrowserHeadless(bool)
	SetBrowserURL(string)

	// Humanoid Setters
	SetHumanoidHumanTiming(bool)
	SetHumanoidDistanceBased(bool)
	SetHumanoidFallbackDuration(time.Duration)
	SetHumanoidThinkingProbability(float64)
	SetHumanoidThinkingRange(minMs, maxMs float64)
	SetHumanoidThinkingMinMs(float64)
	SetHumanoidThinkingMaxMs(float64)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	BrowserCfg  BrowserConfig  `mapstructure:"browser" yaml:"browser"`
	HumanoidCfg HumanoidConfig `mapstructure:"humanoid" yaml:"humanoid"`
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Browser() BrowserConfig   { return c.BrowserCfg }
func (c *Config) Humanoid() HumanoidConfig { return c.HumanoidCfg }

// --- Interface Method Implementations (Setters) ---

// Browser Setters
func (c *Config) SetBrowserHeadless(b bool) { c.BrowserCfg.Headless = b }
func (c *Config) SetBrowserURL(url string)  { c.BrowserCfg.URL = url }

// Humanoid Setters
func (c *Config) SetHumanoidHumanTiming(b bool)   { c.HumanoidCfg.HumanTiming = b }
func (c *Config) SetHumanoidDistanceBased(b bool) { c.HumanoidCfg.DistanceBased = b }
func (c *Config) SetHumanoidFallbackDuration(d time.Duration) {
	c.HumanoidCfg.FallbackDuration = d
}

// SetHumanoidThinkingProbability pins the thinking-pause probability.
func (c *Config) SetHumanoidThinkingProbability(p float64) {
	c.HumanoidCfg.Thinking.Probability = &p
}

// SetHumanoidThinkingRange pins the thinking-pause bounds in milliseconds.
func (c *Config) SetHumanoidThinkingRange(minMs, maxMs float64) {
	c.HumanoidCfg.Thinking.MinMs = &minMs
	c.HumanoidCfg.Thinking.MaxMs = &maxMs
}

func (c *Config) SetHumanoidThinkingMinMs(ms float64) { c.HumanoidCfg.Thinking.MinMs = &ms }
func (c *Config) SetHumanoidThinkingMaxMs(ms float64) { c.HumanoidCfg.Thinking.MaxMs = &ms }

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

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BrowserConfig holds settings for the Chrome instance driven by `browse`.
type BrowserConfig struct {
	Headless     bool     `mapstructure:"headless" yaml:"headless"`
	URL          string   `mapstructure:"url" yaml:"url"`
	Args         []string `mapstructure:"args" yaml:"args"`
	WindowWidth  int      `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight int      `mapstructure:"window_height" yaml:"window_height"`
	// StartX and StartY seed the tracked pointer position, since CDP cannot
	// report where the cursor is.
	StartX         float64 `mapstructure:"start_x" yaml:"start_x"`
	StartY         float64 `mapstructure:"start_y" yaml:"start_y"`
	ClickHoldMinMs int     `mapstructure:"click_hold_min_ms" yaml:"click_hold_min_ms"`
	ClickHoldMaxMs int     `mapstructure:"click_hold_max_ms" yaml:"click_hold_max_ms"`
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
	v.SetDefault("logger.service_name", "cursorpace")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.url", "about:blank")
	v.SetDefault("browser.window_width", 1280)
	v.SetDefault("browser.window_height", 800)
	v.SetDefault("browser.start_x", 0.0)
	v.SetDefault("browser.start_y", 0.0)
	v.SetDefault("browser.click_hold_min_ms", 50)
	v.SetDefault("browser.click_hold_max_ms", 120)

	// Initialize all Humanoid defaults using the centralized function in humanoid_config.go.
	setHumanoidDefaults(v)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Short aliases for the values most often overridden from a shell.
	v.BindEnv("browser.url", "CURSORPACE_URL")
	v.BindEnv("humanoid.curve.seed", "CURSORPACE_SEED")
	// Thinking keys have no defaults, so AutomaticEnv cannot discover them.
	for _, key := range []string{"humanoid.thinking.probability", "humanoid.thinking.min_ms", "humanoid.thinking.max_ms"} {
		v.BindEnv(key)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
// Timing parameters are not rejected here; the timing models clamp them.
func (c *Config) Validate() error {
	switch c.LoggerCfg.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be 'console' or 'json', got %q", c.LoggerCfg.Format)
	}
	if c.BrowserCfg.WindowWidth <= 0 || c.BrowserCfg.WindowHeight <= 0 {
		return fmt.Errorf("browser.window_width and browser.window_height must be positive integers")
	}
	if err := c.HumanoidCfg.Validate(); err != nil {
		return fmt.Errorf("humanoid configuration invalid: %w", err)
	}
	return nil
}
