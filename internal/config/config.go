// Package config loads tipcalc settings.
//
// Configuration can be loaded from:
//  1. YAML file (passed with --config)
//  2. Environment variables (fallback)
//
// Example config.yaml:
//
//	tips:
//	  presets: [5, 10, 15, 25, 50]
//	logging:
//	  level: debug
//	metrics:
//	  addr: ":9090"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/tipsplit/internal/calculator"
)

// Config represents the entire application configuration
type Config struct {
	Tips    TipsConfig    `yaml:"tips"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// TipsConfig holds the tip menu
type TipsConfig struct {
	Presets []int `yaml:"presets"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig holds the metrics endpoint address. Empty disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	presets := make([]int, 0, len(calculator.DefaultPresets))
	for _, p := range calculator.DefaultPresets {
		presets = append(presets, int(p))
	}
	return &Config{
		Tips:    TipsConfig{Presets: presets},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and parses the config file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Expand environment variables (e.g., ${TIPCALC_METRICS_ADDR})
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Metrics.Addr = getEnv("TIPCALC_METRICS_ADDR", "")

	if raw := os.Getenv("TIPCALC_PRESETS"); raw != "" {
		presets, err := parsePresets(raw)
		if err != nil {
			return nil, fmt.Errorf("TIPCALC_PRESETS: %w", err)
		}
		cfg.Tips.Presets = presets
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrEnv loads from path when one is given, otherwise from the environment.
func LoadOrEnv(path string) (*Config, error) {
	if path == "" {
		return LoadFromEnv()
	}
	return Load(path)
}

// Validate checks the tip menu and log level.
func (c *Config) Validate() error {
	if len(c.Tips.Presets) == 0 {
		return errors.New("tips.presets must not be empty")
	}
	seen := make(map[int]bool, len(c.Tips.Presets))
	for _, p := range c.Tips.Presets {
		if p <= 0 {
			return fmt.Errorf("tip preset %d must be positive", p)
		}
		if seen[p] {
			return fmt.Errorf("tip preset %d is listed twice", p)
		}
		seen[p] = true
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// Menu returns the configured presets in calculator form.
func (c *Config) Menu() []calculator.Preset {
	menu := make([]calculator.Preset, len(c.Tips.Presets))
	for i, p := range c.Tips.Presets {
		menu[i] = calculator.Preset(p)
	}
	return menu
}

func parsePresets(raw string) ([]int, error) {
	var presets []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.Atoi(strings.TrimSuffix(field, "%"))
		if err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", field, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
