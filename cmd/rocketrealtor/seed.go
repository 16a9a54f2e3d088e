package main

import (
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd ensures a realtor account exists so a fresh database can be used
// straight away behind the auth gateway.
func seedCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Ensure a realtor user exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.close()

			users := service.NewUserService(a.repos.Users, a.logger)
			resp, err := users.EnsureUser(cmd.Context(), service.EnsureUserRequest{Email: email, Name: name})
			if err != nil {
				return err
			}
			a.logger.Info("realtor ready",
				zap.Uint("user_id", resp.User.ID),
				zap.String("email", resp.User.Email),
				zap.Bool("created", resp.Created),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", resp.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "realtor email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
