package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"cinemashowings/internal/domain"
)

const (
	titleRatioThreshold = 0.66
	titleEdgeThreshold  = 0.85
	minContainedLength  = 5
)

// MovieTotals counts sessions per movie across cinemas, folding near-duplicate titles
// into the first key they resemble. Keys are ordered by count, ties by first appearance.
func MovieTotals(cinemas []domain.Cinema) domain.Tally {
	var out domain.Tally
	for _, c := range cinemas {
		for _, m := range c.Movies {
			out = addTitle(out, m.Title, len(m.ShowTimes))
		}
	}
	sortTally(out)
	return out
}

func addTitle(t domain.Tally, title string, count int) domain.Tally {
	key := strings.TrimSpace(normalizeTitle(title))
	if key == "" {
		return t
	}
	for i := range t {
		if similarTitles(key, t[i].Key) {
			t[i].Count += count
			return t
		}
	}
	return append(t, domain.TallyEntry{Key: key, Count: count})
}

// normalizeTitle upper-cases a title, turns hyphens into spaces and drops colons.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(domain.UpperTitle(title), "-", " ")
	return strings.ReplaceAll(title, ":", "")
}

// similarTitles reports whether two normalized titles name the same movie.
// An empty title never matches.
func similarTitles(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return false
	}
	if ratio(ra, rb) > titleRatioThreshold {
		return true
	}
	n := min(len(ra), len(rb))
	if ratio(ra[:n], rb[:n]) > titleEdgeThreshold {
		return true
	}
	if ratio(ra[len(ra)-n:], rb[len(rb)-n:]) > titleEdgeThreshold {
		return true
	}
	if len(ra) >= minContainedLength && len(rb) >= minContainedLength {
		return strings.Contains(a, b) || strings.Contains(b, a)
	}
	return false
}

// ratio is difflib's similarity ratio over characters: 2*matches / total length.
func ratio(a, b []rune) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// sortTally orders entries by count, highest first, keeping insertion order on ties.
func sortTally(t domain.Tally) {
	slices.SortStableFunc(t, func(a, b domain.TallyEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
}
