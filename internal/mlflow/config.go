package mlflow

import (
	"fmt"
	"os"
)

// Environment variables consumed by the launcher.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvBackendStoreURI = "MLFLOW_BACKEND_STORE_URI"
)

// Config carries the environment-derived launcher configuration.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	BackendStoreURI string
}

// ConfigFromEnv reads the launcher configuration from the environment.
// AWS_ACCESS_KEY_ID and MLFLOW_BACKEND_STORE_URI are mandatory.
// AWS_SECRET_ACCESS_KEY is forwarded as-is without validation.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		AccessKeyID:     os.Getenv(EnvAccessKeyID),
		SecretAccessKey: os.Getenv(EnvSecretAccessKey),
		BackendStoreURI: os.Getenv(EnvBackendStoreURI),
	}
	if cfg.AccessKeyID == "" {
		return nil, fmt.Errorf("%s not set", EnvAccessKeyID)
	}
	if cfg.BackendStoreURI == "" {
		return nil, fmt.Errorf("%s not set", EnvBackendStoreURI)
	}
	return cfg, nil
}

// MaskedKey returns the access key truncated for logging.
func (c *Config) MaskedKey() string {
	if len(c.AccessKeyID) <= 5 {
		return c.AccessKeyID
	}
	return c.AccessKeyID[:5] + "..."
}
