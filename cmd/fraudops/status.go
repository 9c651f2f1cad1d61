package main

import (
	"context"
	"fmt"

	"github.com/jordanhubbard/fraudops/internal/inference"
	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the model is ready to serve predictions",
		Long:  "Queries the model metadata URL and reports the model's readiness state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			client := inference.NewClient(cfg.Endpoint, cfg.Timeout)
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
			defer cancel()

			status, err := client.Status(ctx)
			if err != nil {
				if inference.IsConnectionError(err) {
					printPortForwardHint(cfg.Endpoint)
				}
				return err
			}

			if !status.Ready {
				return fmt.Errorf("model %s is not ready", status.Name)
			}
			fmt.Printf("Model %s is ready\n", status.Name)
			return nil
		},
	}
	return cmd
}
