package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_Page(t *testing.T) {
	tally := Tally{{"A", 5}, {"B", 4}, {"C", 3}, {"D", 2}, {"E", 1}}

	tests := []struct {
		name string
		p    PaginationParams
		want Tally
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 2}, Tally{{"A", 5}, {"B", 4}}},
		{"last partial page", PaginationParams{Page: 3, PageSize: 2}, Tally{{"E", 1}}},
		{"past the end", PaginationParams{Page: 4, PageSize: 2}, Tally{}},
		{"unbounded size", PaginationParams{Page: 1}, tally},
		{"page below one", PaginationParams{Page: 0, PageSize: 3}, Tally{{"A", 5}, {"B", 4}, {"C", 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tally.Page(tt.p))
		})
	}
}

func TestTally_StringAndSum(t *testing.T) {
	tally := Tally{{"DUNE PARTE DOS", 40}, {"2D SUB", 2}}
	assert.Equal(t, "DUNE PARTE DOS: 40\n2D SUB: 2\n", tally.String())
	assert.Equal(t, 42, tally.Sum())
	assert.Equal(t, "", Tally(nil).String())
}

func TestParseSeparatorMode(t *testing.T) {
	tests := []struct {
		in   string
		want SeparatorMode
	}{
		{"", SeparatorCinema},
		{"movie", SeparatorMovie},
		{" Cinema ", SeparatorCinema},
		{"SHOWTIME", SeparatorShowtime},
	}
	for _, tt := range tests {
		got, err := ParseSeparatorMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSeparatorMode("day")
	assert.True(t, errors.Is(err, ErrUnknownSeparator))
}
