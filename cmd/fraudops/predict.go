package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jordanhubbard/fraudops/internal/config"
	"github.com/jordanhubbard/fraudops/internal/inference"
	"github.com/spf13/cobra"
)

func newPredictCommand() *cobra.Command {
	var (
		samples int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Send synthetic transactions to the prediction endpoint",
		Long: `Generates a batch of synthetic credit-card transactions (a mix of
fraud-like and normal-like shapes), sends them as one prediction request,
and prints the fraud probability returned for each transaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("samples") {
				cfg.Samples = samples
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runPredict(cfg)
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 5, "Number of test samples to send")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	return cmd
}

func runPredict(cfg *config.Config) error {
	fmt.Printf("Testing inference endpoint %s\n", cfg.Endpoint)

	gen := inference.NewGenerator(0)
	instances, labels := gen.Batch(cfg.Samples)

	fmt.Printf("Sending %d transactions for prediction...\n", len(instances))

	client := inference.NewClient(cfg.Endpoint, cfg.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	probs, err := client.Predict(ctx, instances)
	if err != nil {
		if inference.IsConnectionError(err) {
			printPortForwardHint(cfg.Endpoint)
		}
		return err
	}

	for i, prob := range probs {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		fmt.Printf("Transaction %d (%-11s): fraud probability = %.4f\n", i+1, label, prob)
	}

	fmt.Printf("%d predictions completed\n", len(probs))
	return nil
}

func printPortForwardHint(endpoint string) {
	fmt.Fprintf(os.Stderr, "Could not connect to %s\n", endpoint)
	fmt.Fprintln(os.Stderr, "Make sure port-forwarding is enabled:")
	fmt.Fprintln(os.Stderr, "  kubectl port-forward -n kubeflow-user-example-com svc/fraud-detection-predictor-default 8080:80")
}
