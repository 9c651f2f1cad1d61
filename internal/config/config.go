package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the predict URL exposed by a local port-forward to
// the fraud-detection InferenceService.
const DefaultEndpoint = "http://localhost:8080/v1/models/fraud-detection:predict"

const (
	defaultSamples = 5
	defaultTimeout = 30 * time.Second
)

// Config holds the CLI configuration.
type Config struct {
	Endpoint string
	Samples  int
	Timeout  time.Duration
}

// fileConfig is the YAML shape of an optional config file. Unset fields
// keep their defaults.
type fileConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Samples        int    `yaml:"samples"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Default returns the built-in configuration. FRAUDOPS_ENDPOINT overrides
// the default endpoint when set.
func Default() *Config {
	cfg := &Config{
		Endpoint: DefaultEndpoint,
		Samples:  defaultSamples,
		Timeout:  defaultTimeout,
	}
	applyEnv(cfg)
	return cfg
}

// Load reads a YAML config file on top of the defaults. Environment
// variables still take precedence over file values.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Endpoint: DefaultEndpoint,
		Samples:  defaultSamples,
		Timeout:  defaultTimeout,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.Endpoint != "" {
		cfg.Endpoint = file.Endpoint
	}
	if file.Samples != 0 {
		cfg.Samples = file.Samples
	}
	if file.TimeoutSeconds != 0 {
		cfg.Timeout = time.Duration(file.TimeoutSeconds) * time.Second
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if endpoint := os.Getenv("FRAUDOPS_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
}

// Validate checks the configuration before use.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
