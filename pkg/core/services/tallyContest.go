package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/contest-tally/internal/config"
	"github.com/jakechorley/contest-tally/pkg/core/tally"
)

// TallyOptions override the display settings from the config.
// Zero values keep the configured setting.
type TallyOptions struct {
	TopN     int
	RankMode string
}

// TallyResult represents the outcome of one tally run
type TallyResult struct {
	RunID       string
	BallotCount int
	Result      tally.Result
	Rows        []tally.Row
	RankMode    tally.RankMode
}

// TallyContest scores the ballots against the configured countries and point
// scale and returns the ranked rows. An unknown country aborts the run with a
// wrapped *tally.ValidationError.
func TallyContest(logger *zap.Logger, cfg *config.Config, ballots []tally.Ballot, opts TallyOptions) (*TallyResult, error) {
	topN := cfg.TopN
	if opts.TopN != 0 {
		topN = opts.TopN
	}

	modeName := cfg.RankMode
	if opts.RankMode != "" {
		modeName = opts.RankMode
	}
	mode, err := tally.ParseRankMode(modeName)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	eligible := tally.NewEligibilitySet(cfg.Countries...)
	scale := tally.PointScale(cfg.PointScale)

	logger.Info("Starting tally",
		zap.Int("ballots", len(ballots)),
		zap.Int("eligible_countries", eligible.Len()),
		zap.Ints("point_scale", scale),
		zap.String("config_source", cfg.Source))

	for i, ballot := range ballots {
		if len(ballot) > len(scale) {
			logger.Debug("Ballot longer than point scale, extra entries ignored",
				zap.Int("ballot", i+1),
				zap.Int("entries", len(ballot)),
				zap.Int("scored", len(scale)))
		}
	}

	result, err := tally.Aggregate(ballots, eligible, scale)
	if err != nil {
		var verr *tally.ValidationError
		if errors.As(err, &verr) {
			logger.Warn("Ballot rejected",
				zap.String("kind", string(verr.Kind)),
				zap.String("option", verr.Option),
				zap.Int("ballot", verr.Ballot+1),
				zap.Int("position", verr.Position+1))
		}
		return nil, fmt.Errorf("failed to tally ballots: %w", err)
	}

	rows := tally.FormatRankedWith(result, topN, mode)

	logger.Info("Tally complete",
		zap.Int("scored_countries", len(result)),
		zap.Int("rows", len(rows)),
		zap.String("rank_mode", string(mode)))

	return &TallyResult{
		RunID:       runID,
		BallotCount: len(ballots),
		Result:      result,
		Rows:        rows,
		RankMode:    mode,
	}, nil
}
