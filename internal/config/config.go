// Package config loads the YAML configuration with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ProfitScanner/internal/collector"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Bench struct {
		Sizes []int `yaml:"sizes"`
		Runs  int   `yaml:"runs"`
		Min   int   `yaml:"min"`
		Max   int   `yaml:"max"`
		Seed  int64 `yaml:"seed"`
	} `yaml:"bench"`
	Schedule struct {
		BenchCron string `yaml:"bench_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides
// and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // best-effort .env

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROFITSCAN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PROFITSCAN_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("PROFITSCAN_BENCH_CRON"); v != "" {
		cfg.Schedule.BenchCron = v
	}
	if v := os.Getenv("PROFITSCAN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse PROFITSCAN_SEED: %w", err)
		}
		cfg.Bench.Seed = seed
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if len(cfg.Bench.Sizes) == 0 {
		cfg.Bench.Sizes = []int{1_000, 10_000, 100_000, 1_000_000}
	}
	if cfg.Bench.Runs == 0 {
		cfg.Bench.Runs = 5
	}
	if cfg.Bench.Min == 0 && cfg.Bench.Max == 0 {
		cfg.Bench.Min, cfg.Bench.Max = -50, 50
	}
	if cfg.Schedule.BenchCron == "" {
		cfg.Schedule.BenchCron = "0 */15 * * * *"
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Bench.Runs <= 0 {
		return fmt.Errorf("bench.runs must be positive")
	}
	for _, s := range c.Bench.Sizes {
		if s <= 0 {
			return fmt.Errorf("bench.sizes must be positive, got %d", s)
		}
	}
	if !collector.ValidRange(c.Bench.Min, c.Bench.Max) {
		return fmt.Errorf("bench range [%d, %d): %w", c.Bench.Min, c.Bench.Max, collector.ErrInvalidRange)
	}
	return nil
}
