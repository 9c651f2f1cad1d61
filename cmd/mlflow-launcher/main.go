package main

import (
	"log"

	"github.com/jordanhubbard/fraudops/internal/mlflow"
)

// mlflow-launcher assembles the tracking-server command line from the
// environment and replaces itself with the server process, so the AWS
// credentials and region are guaranteed to be visible to boto3.
func main() {
	log.SetFlags(0)

	cfg, err := mlflow.ConfigFromEnv()
	if err != nil {
		log.Fatalf("[Launcher] Configuration error: %v", err)
	}

	log.Printf("[Launcher] Starting MLflow with AWS credentials: %s", cfg.MaskedKey())
	log.Printf("[Launcher] Executing: %s", cfg.CommandLine())

	if err := mlflow.Launch(cfg); err != nil {
		log.Fatalf("[Launcher] %v", err)
	}
}
