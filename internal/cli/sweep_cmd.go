package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wardrisk/internal/cli/formatter"
	"github.com/alexanderramin/wardrisk/internal/retention"
)

func newSweepCmd(app *App) *cobra.Command {
	var maxAgeDays int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired dated output directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := maxAgeDays
			if !cmd.Flags().Changed("days") {
				days = app.Config.RetentionDays
			}
			if days <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Retention disabled; nothing to do."))
				return nil
			}

			report := retention.Sweep(app.Config.OutputRoot, days, time.Now(), slog.Default())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Removed %d expired directories (%d skipped)", len(report.Removed), len(report.Skipped))))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxAgeDays, "days", 0, "Retention window in days (defaults to configuration)")

	return cmd
}
