package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/contest-tally/pkg/core/tally"
)

// CountriesCmd creates the countries command
func CountriesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries a ballot may contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eligible := tally.NewEligibilitySet(app.Cfg.Countries...)

			fmt.Fprintf(app.Out, "%d eligible countries (%s):\n", eligible.Len(), app.Cfg.Source)
			for _, name := range eligible.Names() {
				fmt.Fprintf(app.Out, "- %s\n", name)
			}
			return nil
		},
	}
}
