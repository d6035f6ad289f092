package tally

import "slices"

// DefaultPointScale is the song contest scale: 12 points for a first
// preference, then 10, 8 and 7 down to 1 for the tenth.
var DefaultPointScale = PointScale{12, 10, 8, 7, 6, 5, 4, 3, 2, 1}

// EligibilitySet is the immutable set of option names a ballot may contain
type EligibilitySet struct {
	members map[string]struct{}
	order   []string
}

// NewEligibilitySet builds a set from the given names, ignoring repeats
func NewEligibilitySet(names ...string) *EligibilitySet {
	set := &EligibilitySet{
		members: make(map[string]struct{}, len(names)),
		order:   make([]string, 0, len(names)),
	}
	for _, name := range names {
		if _, exists := set.members[name]; exists {
			continue
		}
		set.members[name] = struct{}{}
		set.order = append(set.order, name)
	}
	return set
}

// Contains reports whether option is eligible
func (s *EligibilitySet) Contains(option string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[option]
	return ok
}

// Len returns the number of eligible options
func (s *EligibilitySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the eligible options in the order they were supplied
func (s *EligibilitySet) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// PointScale holds the points awarded per ballot position, most preferred first
type PointScale []int

// PointsAt returns the points for a 0-indexed ballot position and whether
// the position is scored at all
func (ps PointScale) PointsAt(position int) (int, bool) {
	if position < 0 || position >= len(ps) {
		return 0, false
	}
	return ps[position], true
}

// Ballot is one voter's ranked list of options, most preferred first
type Ballot []string

// Standing is an option's accumulated total
type Standing struct {
	Option string
	Total  int
}

// Result is the list of standings ordered by ascending total
type Result []Standing

// Row is a display row produced from a Result
type Row struct {
	Rank   int
	Option string
	Total  int
}

// tallySheet accumulates points and remembers the order options first scored in
type tallySheet struct {
	totals map[string]int
	order  []string
}

func newTallySheet() *tallySheet {
	return &tallySheet{totals: make(map[string]int)}
}

func (t *tallySheet) add(option string, points int) {
	if _, seen := t.totals[option]; !seen {
		t.order = append(t.order, option)
	}
	t.totals[option] += points
}

// standings returns the sheet in first-appearance order
func (t *tallySheet) standings() Result {
	result := make(Result, 0, len(t.order))
	for _, option := range t.order {
		result = append(result, Standing{Option: option, Total: t.totals[option]})
	}
	return result
}
