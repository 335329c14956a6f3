package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tanzhongyan/Singheatlh/cmd/bootstrap"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"

	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	var (
		outputDir    string
		seed         uint64
		today        string
		patients     int
		appointments int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic dataset next to clinics.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			cfg := &app.Config.Generator
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("today") {
				parsed, err := time.Parse("2006-01-02", today)
				if err != nil {
					return fmt.Errorf("invalid --today %q, use YYYY-MM-DD: %w", today, err)
				}
				// Keep the configured horizon relative to the new date.
				cfg.ScheduleEndDate = parsed.Add(cfg.ScheduleEndDate.Sub(cfg.Today))
				cfg.Today = parsed
			}
			if flags.Changed("patients") {
				cfg.NumPatients = patients
			}
			if flags.Changed("appointments") {
				cfg.NumAppointments = appointments
			}

			generateUsecase, err := app.NewGenerateUsecase()
			if err != nil {
				return err
			}

			summary, err := generateUsecase.Generate(cmd.Context(), &dto.GenerateRequest{
				OutputDir:       cfg.OutputDir,
				Today:           cfg.Today,
				ScheduleEndDate: cfg.ScheduleEndDate,
				HistoryDays:     cfg.HistoryDays,
				NumPatients:     cfg.NumPatients,
				NumAppointments: cfg.NumAppointments,
				AttemptFactor:   cfg.AttemptFactor,
				Seed:            cfg.Seed,
			})
			if err != nil {
				return err
			}

			return printJSON(summary)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory holding clinics.csv; generated files are written here")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&today, "today", "", "reference date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&patients, "patients", 0, "number of patients to generate")
	cmd.Flags().IntVar(&appointments, "appointments", 0, "target number of appointments")

	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
