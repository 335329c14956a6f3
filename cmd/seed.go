package main

import (
	"github.com/tanzhongyan/Singheatlh/cmd/bootstrap"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a generated dataset into the database and create the login accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			if cmd.Flags().Changed("data-dir") {
				app.Config.Seeder.DataDir = dataDir
			}

			seedUsecase, err := app.NewSeedUsecase(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := seedUsecase.Seed(cmd.Context(), &dto.SeedRequest{DataDir: app.Config.Seeder.DataDir})
			if err != nil {
				return err
			}

			return printJSON(summary)
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the generated CSV files")
	cmd.AddCommand(newAuthUsersCommand(&dataDir))

	return cmd
}

func newAuthUsersCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-users",
		Short: "Create a login account for every row of user_profile.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			dir := app.Config.Seeder.DataDir
			if cmd.Flags().Changed("data-dir") {
				dir = *dataDir
			}

			identityUsecase, err := app.NewIdentityUsecase()
			if err != nil {
				return err
			}

			summary, err := identityUsecase.ProvisionFromFile(cmd.Context(), dir)
			if err != nil {
				return err
			}

			return printJSON(summary)
		},
	}
}
