package mlflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAccessKeyID, "AKIAEXAMPLEKEY")
	t.Setenv(EnvSecretAccessKey, "secret123")
	t.Setenv(EnvBackendStoreURI, "postgresql://mlflow:pw@db:5432/mlflow")
}

func TestConfigFromEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "AKIAEXAMPLEKEY", cfg.AccessKeyID)
	assert.Equal(t, "secret123", cfg.SecretAccessKey)
	assert.Equal(t, "postgresql://mlflow:pw@db:5432/mlflow", cfg.BackendStoreURI)
}

func TestConfigFromEnv_MissingAccessKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvAccessKeyID, "")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAccessKeyID)
}

func TestConfigFromEnv_MissingBackendStoreURI(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvBackendStoreURI, "")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBackendStoreURI)
}

func TestConfigFromEnv_SecretKeyOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvSecretAccessKey, "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.SecretAccessKey)
}

func TestMaskedKey(t *testing.T) {
	cfg := &Config{AccessKeyID: "AKIAEXAMPLEKEY"}
	assert.Equal(t, "AKIAE...", cfg.MaskedKey())

	short := &Config{AccessKeyID: "AKIA"}
	assert.Equal(t, "AKIA", short.MaskedKey())
}
