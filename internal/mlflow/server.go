package mlflow

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

const binary = "mlflow"

// Fixed server settings. The tracking server always binds all interfaces
// on port 5000 and proxies artifacts through the S3 bucket.
const (
	host                 = "0.0.0.0"
	port                 = 5000
	artifactsDestination = "s3://mlflow-bucket"
	defaultArtifactRoot  = "mlflow-artifacts:/"
	region               = "us-east-1"
)

// Args returns the full argument list for the tracking server, argv[0]
// included. Only the backend store URI varies; everything else is fixed.
func (c *Config) Args() []string {
	return []string{
		binary, "server",
		fmt.Sprintf("--host=%s", host),
		fmt.Sprintf("--port=%d", port),
		fmt.Sprintf("--backend-store-uri=%s", c.BackendStoreURI),
		fmt.Sprintf("--artifacts-destination=%s", artifactsDestination),
		fmt.Sprintf("--default-artifact-root=%s", defaultArtifactRoot),
		"--serve-artifacts",
		"--allowed-hosts=*",
	}
}

// CommandLine renders the argument list for logging.
func (c *Config) CommandLine() string {
	return strings.Join(c.Args(), " ")
}

// Environ returns the child environment: the current environment with the
// credentials and region variables forced, so boto3 inside the tracking
// server sees them regardless of how the launcher was invoked.
func (c *Config) Environ() []string {
	env := environWithout(EnvAccessKeyID, EnvSecretAccessKey, "AWS_DEFAULT_REGION", "AWS_REGION")
	return append(env,
		EnvAccessKeyID+"="+c.AccessKeyID,
		EnvSecretAccessKey+"="+c.SecretAccessKey,
		"AWS_DEFAULT_REGION="+region,
		"AWS_REGION="+region,
	)
}

func environWithout(keys ...string) []string {
	drop := make(map[string]bool, len(keys))
	for _, key := range keys {
		drop[key] = true
	}

	env := os.Environ()
	out := make([]string, 0, len(env))
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		if drop[name] {
			continue
		}
		out = append(out, kv)
	}
	return out
}

// Launch resolves the mlflow binary on PATH and replaces the current
// process image with the tracking server. On success it never returns.
func Launch(cfg *Config) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", binary, err)
	}

	// Flush stdout before exec replaces the process
	os.Stdout.Sync()

	if err := syscall.Exec(path, cfg.Args(), cfg.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
