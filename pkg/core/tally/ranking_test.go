package tally

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleResult() Result {
	return Result{
		{Option: "Молдавия", Total: 8},
		{Option: "Австралия", Total: 8},
		{Option: "Италия", Total: 10},
		{Option: "Швеция", Total: 10},
		{Option: "Испания", Total: 12},
		{Option: "Финляндия", Total: 20},
		{Option: "Норвегия", Total: 22},
	}
}

func TestFormatRanked_AllRows(t *testing.T) {
	rows := FormatRanked(exampleResult(), 0)

	expected := []Row{
		{Rank: 7, Option: "Молдавия", Total: 8},
		{Rank: 6, Option: "Австралия", Total: 8},
		{Rank: 5, Option: "Италия", Total: 10},
		{Rank: 4, Option: "Швеция", Total: 10},
		{Rank: 3, Option: "Испания", Total: 12},
		{Rank: 2, Option: "Финляндия", Total: 20},
		{Rank: 1, Option: "Норвегия", Total: 22},
	}
	assert.Equal(t, expected, rows)
}

func TestFormatRanked_TopN(t *testing.T) {
	tests := []struct {
		name     string
		topN     int
		expected int
	}{
		{"top two", 2, 2},
		{"zero means all", 0, 7},
		{"negative means all", -3, 7},
		{"larger than result", 20, 7},
		{"exact length", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := FormatRanked(exampleResult(), tt.topN)
			require.Len(t, rows, tt.expected)
			assert.Equal(t, 1, rows[len(rows)-1].Rank)
			assert.Equal(t, "Норвегия", rows[len(rows)-1].Option)
		})
	}
}

func TestFormatRanked_TopTwo(t *testing.T) {
	rows := FormatRanked(exampleResult(), 2)

	assert.Equal(t, []Row{
		{Rank: 2, Option: "Финляндия", Total: 20},
		{Rank: 1, Option: "Норвегия", Total: 22},
	}, rows)
}

func TestFormatRanked_Empty(t *testing.T) {
	assert.Empty(t, FormatRanked(nil, 5))
	assert.Empty(t, FormatRanked(Result{}, 0))
}

func TestFormatRankedWith_Competition(t *testing.T) {
	rows := FormatRankedWith(exampleResult(), 0, RankCompetition)

	ranks := make([]int, len(rows))
	for i, row := range rows {
		ranks[i] = row.Rank
	}
	assert.Equal(t, []int{6, 6, 4, 4, 3, 2, 1}, ranks)
}

func TestFormatRankedWith_Dense(t *testing.T) {
	rows := FormatRankedWith(exampleResult(), 0, RankDense)

	ranks := make([]int, len(rows))
	for i, row := range rows {
		ranks[i] = row.Rank
	}
	assert.Equal(t, []int{5, 5, 4, 4, 3, 2, 1}, ranks)
}

func TestFormatRankedWith_TopNKeepsSharedRank(t *testing.T) {
	// Швеция shares 4th with Италия even when Италия is cut off
	rows := FormatRankedWith(exampleResult(), 4, RankCompetition)

	require.Len(t, rows, 4)
	assert.Equal(t, Row{Rank: 4, Option: "Швеция", Total: 10}, rows[0])
}

func TestParseRankMode(t *testing.T) {
	tests := []struct {
		input    string
		expected RankMode
		wantErr  bool
	}{
		{"", RankSequential, false},
		{"sequential", RankSequential, false},
		{"competition", RankCompetition, false},
		{"dense", RankDense, false},
		{"olympic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseRankMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, FormatRanked(exampleResult(), 2))
	require.NoError(t, err)

	assert.Equal(t, "2) Финляндия: 20\n1) Норвегия: 22\n", buf.String())
}
