package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/wardrisk/internal/config"
	"github.com/alexanderramin/wardrisk/internal/geo"
	"github.com/alexanderramin/wardrisk/internal/service"
)

// App holds the services and lazily-loaded reference data used by the CLI
// commands. Reference inputs load on first use so housekeeping commands run
// without them.
type App struct {
	Submissions service.SubmissionService
	Config      config.Config

	Hazards func() ([]string, error)
	Layer   func() (*geo.Layer, error)

	IsInteractive func() bool
}

// NewRootCmd creates the top-level "wardrisk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wardrisk",
		Short: "Ward hazard risk survey intake",
	}

	root.AddCommand(
		newSubmitCmd(app),
		newWardsCmd(app),
		newHazardsCmd(app),
		newSweepCmd(app),
	)

	return root
}
