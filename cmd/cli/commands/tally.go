package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/contest-tally/pkg/core/services"
	"github.com/jakechorley/contest-tally/pkg/core/tally"
)

// TallyCmd creates the tally command
func TallyCmd(app *AppContext) *cobra.Command {
	var opts services.TallyOptions

	cmd := &cobra.Command{
		Use:   "tally <ballot>...",
		Short: "Tally ballots and print the ranked countries",
		Long: `Tally ballots and print the ranked countries.

Each argument is one ballot: country names separated by commas, most
preferred first. Only the first positions covered by the point scale score.`,
		Example: `  tally-cli tally "Норвегия, Италия, Финляндия" "Финляндия, Норвегия, Молдавия"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ballots := parseBallots(args)

			app.Logger.Debug("tally command",
				zap.Int("ballots", len(ballots)),
				zap.Int("top", opts.TopN),
				zap.String("rank_mode", opts.RankMode))

			result, err := services.TallyContest(app.Logger, app.Cfg, ballots, opts)
			if err != nil {
				return err
			}

			return tally.WriteRows(app.Out, result.Rows)
		},
	}

	cmd.Flags().IntVarP(&opts.TopN, "top", "n", 0, "Show only the top N countries (default from config, 0 = all)")
	cmd.Flags().StringVar(&opts.RankMode, "rank-mode", "", "Rank labels for equal totals: sequential, competition or dense")

	return cmd
}

// parseBallots turns each argument into a ballot
func parseBallots(args []string) []tally.Ballot {
	ballots := make([]tally.Ballot, 0, len(args))
	for _, arg := range args {
		ballots = append(ballots, parseBallot(arg))
	}
	return ballots
}

// parseBallot splits a comma-separated ballot and trims each name.
// Empty names are dropped so a trailing comma does not count as an entry.
func parseBallot(arg string) tally.Ballot {
	ballot := tally.Ballot{}
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ballot = append(ballot, name)
	}
	return ballot
}
