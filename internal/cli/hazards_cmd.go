package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHazardsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hazards",
		Short: "Print the hazard reference list",
		RunE: func(cmd *cobra.Command, args []string) error {
			hazards, err := app.Hazards()
			if err != nil {
				return fmt.Errorf("loading hazard list: %w", err)
			}
			for _, h := range hazards {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
}
