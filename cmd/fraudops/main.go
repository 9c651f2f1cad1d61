package main

import (
	"os"

	"github.com/jordanhubbard/fraudops/internal/config"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	endpoint   string
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fraudops",
		Short: "Fraudops CLI - operational checks for the fraud-detection deployment",
		Long: `fraudops smoke-tests the deployed fraud-detection InferenceService:
it sends synthetic transactions to the prediction endpoint and reports
the fraud probabilities the model returns.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "Prediction endpoint URL (default: "+config.DefaultEndpoint+")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")

	// Add subcommands
	rootCmd.AddCommand(newPredictCommand())
	rootCmd.AddCommand(newStatusCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the optional config file, the environment,
// and an explicit --endpoint flag, in increasing order of precedence.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, nil
}
