package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flowtrack/internal/config"
	"flowtrack/internal/enrich"
	"flowtrack/pkg/logger"
)

// enrichCommand constructs the 'enrich' subcommand that runs the pipeline
// once for a single email and prints the result, useful for debugging without
// a database or queue.
func enrichCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Runs the enrichment pipeline once for an email and prints the result",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			company, _ := cmd.Flags().GetString("company")

			ctx := context.Background()

			// Run never touches storage, so the one-shot command skips the
			// database entirely.
			enricher, err := enrich.New(nil, pipelineDeps(cfg), enrich.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create enricher", zap.Error(err))
			}

			result, skipReason := enricher.Run(ctx, email, name, company)
			if skipReason != "" {
				logger.Warn(ctx, "enrichment skipped", zap.String("reason", skipReason))

				return
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode result", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Email address to enrich")
	cmd.Flags().String("name", "", "Person name used for the profile lookup")
	cmd.Flags().String("company", "", "Company name hint")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
