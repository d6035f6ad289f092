package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/contest-tally/pkg/core/tally"
)

// ScaleCmd creates the scale command
func ScaleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Show the points awarded for each ballot position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale := tally.PointScale(app.Cfg.PointScale)

			fmt.Fprintln(app.Out, "Position  Points")
			for pos := range scale {
				points, _ := scale.PointsAt(pos)
				fmt.Fprintf(app.Out, "%8d  %6d\n", pos+1, points)
			}
			return nil
		},
	}
}
