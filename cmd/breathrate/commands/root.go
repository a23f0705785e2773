package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"breathrate/internal/app"
)

func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breathrate [input] [output]",
		Short: "Estimate breathing rate from heart-rate RR intervals",
		Long: "Reads a heart-rate sensor log of timestamped RR intervals, detects the\n" +
			"slow breathing oscillation and writes breaths per minute as a time,bpm CSV.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.DefaultConfig()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.InputPath = args[0]
			}
			if len(args) > 1 {
				cfg.OutputPath = args[1]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input file: %s\n", cfg.InputPath)
			fmt.Fprintf(out, "Output file: %s\n", cfg.OutputPath)
			fmt.Fprintln(out, rule)

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cmd.ErrOrStderr(), slog.LevelInfo)
			report, err := app.New(w, logger).Run()
			if err != nil {
				return err
			}

			printReport(out, report)
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out, "Analysis complete!")
			return nil
		},
	}
}
