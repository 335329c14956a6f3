package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "singheatlh",
		Short: "Synthetic clinic dataset generator and database seeder",
		Long: `Generates a consistent synthetic dataset (users, doctors, schedules, appointments,
medical summaries and queue tickets) for the clinics listed in clinics.csv, loads it
into the database and manages the API keys the stack needs.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newTokenCommand())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		logrus.Errorf("Command failed: %v", err)
		os.Exit(1)
	}
}
