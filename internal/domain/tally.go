package domain

import (
	"fmt"
	"strings"
)

// TallyEntry is one line of a totals leaderboard.
// swagger:model TallyEntry
type TallyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Tally is a leaderboard sorted by count, highest first.
type Tally []TallyEntry

// String renders "<key>: <count>\n" per entry.
func (t Tally) String() string {
	var b strings.Builder
	for _, e := range t {
		fmt.Fprintf(&b, "%s: %d\n", e.Key, e.Count)
	}
	return b.String()
}

// Sum adds all counts.
func (t Tally) Sum() int {
	n := 0
	for _, e := range t {
		n += e.Count
	}
	return n
}
