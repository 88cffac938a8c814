// Package config holds the runtime settings for the mangle CLI and HTTP
// server. Settings come from three layers, lowest precedence first:
// struct defaults, an optional YAML file, then MANGLE_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds global settings. All fields can be set via environment
// variables or a YAML config file; environment wins.
type Config struct {
	// === HTTP Server ===
	ListenAddr   string        `env:"MANGLE_LISTEN_ADDR" envDefault:":8080" yaml:"listen_addr"`
	ReadTimeout  time.Duration `env:"MANGLE_READ_TIMEOUT" envDefault:"10s" yaml:"read_timeout"`
	WriteTimeout time.Duration `env:"MANGLE_WRITE_TIMEOUT" envDefault:"10s" yaml:"write_timeout"`
	BodyLimit    int           `env:"MANGLE_BODY_LIMIT" envDefault:"1048576" yaml:"body_limit"`

	// === Batch Endpoint ===
	// MaxBatchItems caps the number of items in one POST /batch request;
	// BatchConcurrency bounds how many run at once.
	MaxBatchItems    int `env:"MANGLE_MAX_BATCH_ITEMS" envDefault:"256" yaml:"max_batch_items"`
	BatchConcurrency int `env:"MANGLE_BATCH_CONCURRENCY" envDefault:"8" yaml:"batch_concurrency"`

	// === Input Limits ===
	// MaxInputBytes caps a single transformation input. Zalgo and the
	// encoders can grow output several-fold, so this bounds response size
	// too.
	MaxInputBytes int `env:"MANGLE_MAX_INPUT_BYTES" envDefault:"65536" yaml:"max_input_bytes"`
}

// New returns the default configuration with environment overrides
// applied.
func New() (*Config, error) {
	return Load("")
}

// Load builds the configuration from defaults, an optional YAML file at
// path, and the environment, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		// Re-apply the environment so it outranks the file.
		if err := env.Parse(cfg); err != nil {
			return nil, fmt.Errorf("config: parse environment: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr must not be empty")
	}
	if c.MaxBatchItems < 1 {
		return fmt.Errorf("config: max_batch_items must be at least 1, got %d", c.MaxBatchItems)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("config: batch_concurrency must be at least 1, got %d", c.BatchConcurrency)
	}
	if c.MaxInputBytes < 1 {
		return fmt.Errorf("config: max_input_bytes must be at least 1, got %d", c.MaxInputBytes)
	}
	if c.BodyLimit < c.MaxInputBytes {
		return fmt.Errorf("config: body_limit (%d) must not be below max_input_bytes (%d)",
			c.BodyLimit, c.MaxInputBytes)
	}
	return nil
}
