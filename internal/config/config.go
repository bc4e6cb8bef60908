// Package config loads and validates unwrapdemo configuration via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sink names accepted for printer.sink.
const (
	SinkDefault = "default"
	SinkStdout  = "stdout"
	SinkFile    = "file"
	SinkZap     = "zap"
)

// Config captures all demo configuration knobs loaded via Viper.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Printer PrinterConfig `mapstructure:"printer"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// PrinterConfig selects which sink the demo installs into the global slot.
type PrinterConfig struct {
	Sink  string `mapstructure:"sink"`
	Path  string `mapstructure:"path"`
	Force bool   `mapstructure:"force"`
}

// MetricsConfig toggles the Prometheus counting decorator.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("UNWRAPDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("printer.sink", SinkStdout)
	v.SetDefault("printer.path", "")
	v.SetDefault("printer.force", false)
	v.SetDefault("metrics.enabled", false)
}

// Validate enforces recognized sink names and their prerequisites.
func (c Config) Validate() error {
	switch c.Printer.Sink {
	case SinkDefault, SinkStdout, SinkZap:
	case SinkFile:
		if c.Printer.Path == "" {
			return fmt.Errorf("printer.path must be set when printer.sink is %q", SinkFile)
		}
	default:
		return fmt.Errorf("unknown printer.sink %q", c.Printer.Sink)
	}
	return nil
}
