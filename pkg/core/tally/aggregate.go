package tally

import (
	"cmp"
	"slices"
)

// Aggregate scores every ballot against the point scale and returns the
// totals ordered from fewest to most points.
//
// Ballot entries are paired with scale positions until either runs out, so
// entries past the end of the scale never score. The first entry outside the
// eligibility set aborts the whole run with a *ValidationError and no result.
// Options with equal totals stay in the order they first scored.
func Aggregate(ballots []Ballot, eligible *EligibilitySet, scale PointScale) (Result, error) {
	if err := checkInputs(eligible, scale); err != nil {
		return nil, err
	}

	sheet := newTallySheet()
	for b, ballot := range ballots {
		scored := min(len(ballot), len(scale))
		for pos := 0; pos < scored; pos++ {
			option := ballot[pos]
			if !eligible.Contains(option) {
				return nil, newUnknownOptionError(option, b, pos)
			}
			sheet.add(option, scale[pos])
		}
	}

	result := sheet.standings()
	slices.SortStableFunc(result, func(a, b Standing) int {
		return cmp.Compare(a.Total, b.Total)
	})
	return result, nil
}

func checkInputs(eligible *EligibilitySet, scale PointScale) error {
	if eligible.Len() == 0 {
		return ErrEmptyEligibilitySet
	}
	if len(scale) == 0 {
		return ErrEmptyPointScale
	}
	for _, points := range scale {
		if points < 0 {
			return ErrNegativePoints
		}
	}
	return nil
}
