package main

import (
	"fmt"

	"github.com/tanzhongyan/Singheatlh/cmd/bootstrap"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"

	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate and verify the service_role and anon API keys",
	}

	cmd.AddCommand(newTokenGenerateCommand())
	cmd.AddCommand(newTokenVerifyCommand())

	return cmd
}

func newTokenGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Sign new API keys with JWT_SECRET and print them as .env lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			tokenUsecase, err := app.NewTokenUsecase()
			if err != nil {
				return err
			}

			pair, err := tokenUsecase.GenerateKeys()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SERVICE_ROLE_KEY=%s\n", pair.ServiceRoleKey)
			fmt.Fprintf(cmd.OutOrStdout(), "ANON_KEY=%s\n", pair.AnonKey)
			return nil
		},
	}
}

func newTokenVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check SERVICE_ROLE_KEY and ANON_KEY against JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			tokenUsecase, err := app.NewTokenUsecase()
			if err != nil {
				return err
			}

			results, verifyErr := tokenUsecase.VerifyKeys([]dto.VerifyTokenRequest{
				{Name: "SERVICE_ROLE_KEY", Token: app.Config.Identity.ServiceKey},
				{Name: "ANON_KEY", Token: app.Config.Identity.AnonKey},
			})
			for _, r := range results {
				if r.Valid {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (role=%s, issuer=%s, expires=%s)\n",
						r.Name, r.Role, r.Issuer, r.ExpiresAt.Format("2006-01-02"))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid (%s)\n", r.Name, r.Reason)
				}
			}
			return verifyErr
		},
	}
}
