package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wardrisk/internal/cli/formatter"
	"github.com/alexanderramin/wardrisk/internal/domain"
	"github.com/alexanderramin/wardrisk/internal/geo"
)

func newWardsCmd(app *App) *cobra.Command {
	var lng, lat float64

	cmd := &cobra.Command{
		Use:   "wards",
		Short: "List wards, or resolve a coordinate to its ward",
		RunE: func(cmd *cobra.Command, args []string) error {
			layer, err := app.Layer()
			if err != nil {
				return fmt.Errorf("loading ward layer: %w", err)
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("lng") && cmd.Flags().Changed("lat") {
				id, ok := geo.NewResolver(layer).Resolve(domain.RawClick{Lng: lng, Lat: lat})
				if !ok {
					fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("No ward contains (%g, %g)", lng, lat)))
					return nil
				}
				fmt.Fprintln(out, id)
				return nil
			}

			for _, id := range layer.WardIDs() {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude to resolve")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude to resolve")

	return cmd
}
