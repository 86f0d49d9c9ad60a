package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flowtrack/internal/api/handler/v1handler"
	"flowtrack/internal/config"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed API token
// scoped to a workspace, using the configured HMAC secret.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates API token for given workspace ID",
		Run: func(cmd *cobra.Command, args []string) {
			workspace, _ := cmd.Flags().GetString("workspace")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			ctx := context.Background()

			id, err := uuid.Parse(workspace)
			if err != nil {
				logger.Fatal(ctx, "invalid workspace ID", zap.Error(err))
			}

			options := v1handler.NewSecHandlerOptions(cfg)
			if TTL > 0 {
				options.TokenTTL = TTL
			}

			sec, err := v1handler.NewSecHandler(options)
			if err != nil {
				logger.Fatal(ctx, "could not create sec handler", zap.Error(err))
			}

			token, err := sec.MintToken(domain.WorkspaceID(id))
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("workspace", "", "Workspace ID the token is scoped to")
	cmd.Flags().Duration("ttl", 0, "Token TTL, defaults to the configured value (e.g., 15m, 1h)")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}
