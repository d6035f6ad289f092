package tally

import (
	"fmt"
	"io"
)

// RankMode selects how rank labels are assigned to equal totals
type RankMode string

const (
	// RankSequential gives every standing its own rank, even on equal totals.
	// Equal totals are ordered by first appearance.
	RankSequential RankMode = "sequential"

	// RankCompetition shares the best rank between equal totals and skips
	// the ranks they used up (1, 2, 2, 4).
	RankCompetition RankMode = "competition"

	// RankDense shares a rank between equal totals without skipping (1, 2, 2, 3).
	RankDense RankMode = "dense"
)

// ParseRankMode converts a config or flag value into a RankMode.
// An empty string selects RankSequential.
func ParseRankMode(s string) (RankMode, error) {
	switch mode := RankMode(s); mode {
	case "":
		return RankSequential, nil
	case RankSequential, RankCompetition, RankDense:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown rank mode %q (want sequential, competition or dense)", s)
	}
}

// FormatRanked labels the top topN standings of result with sequential ranks.
// See FormatRankedWith.
func FormatRanked(result Result, topN int) []Row {
	return FormatRankedWith(result, topN, RankSequential)
}

// FormatRankedWith returns min(topN, len(result)) rows for the highest totals
// in result. A topN of zero or less selects every standing.
//
// Ranks count from the highest total, which is rank 1. Rows keep the order of
// result, so the lowest shown rank comes first and rank 1 comes last.
func FormatRankedWith(result Result, topN int, mode RankMode) []Row {
	n := len(result)
	if topN <= 0 || topN > n {
		topN = n
	}

	ranks := rankLabels(result, mode)
	rows := make([]Row, 0, topN)
	for i := n - topN; i < n; i++ {
		rows = append(rows, Row{
			Rank:   ranks[i],
			Option: result[i].Option,
			Total:  result[i].Total,
		})
	}
	return rows
}

// rankLabels computes the rank of every index of result, walking down from
// the highest total at the end of the slice.
func rankLabels(result Result, mode RankMode) []int {
	n := len(result)
	ranks := make([]int, n)
	dense := 0
	for i := n - 1; i >= 0; i-- {
		place := n - i
		tied := i < n-1 && result[i].Total == result[i+1].Total

		switch mode {
		case RankCompetition:
			if tied {
				ranks[i] = ranks[i+1]
			} else {
				ranks[i] = place
			}
		case RankDense:
			if !tied {
				dense++
			}
			ranks[i] = dense
		default:
			ranks[i] = place
		}
	}
	return ranks
}

// String renders the row as "<rank>) <option>: <total>"
func (r Row) String() string {
	return fmt.Sprintf("%d) %s: %d", r.Rank, r.Option, r.Total)
}

// WriteRows writes one line per row to w
func WriteRows(w io.Writer, rows []Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}
	return nil
}
