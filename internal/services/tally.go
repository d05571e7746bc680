package services

import "cinemashowings/internal/domain"

// FormatTotals counts sessions per format label. Labels are compared exactly.
func FormatTotals(cinemas []domain.Cinema) domain.Tally {
	var t exactTally
	for _, c := range cinemas {
		for _, m := range c.Movies {
			for _, st := range m.ShowTimes {
				t.add(st.Format, 1)
			}
		}
	}
	return t.sorted()
}

// CinemaTotals counts sessions per cinema name. Names are compared exactly.
func CinemaTotals(cinemas []domain.Cinema) domain.Tally {
	var t exactTally
	for _, c := range cinemas {
		t.add(c.Name, c.ShowTimeCount())
	}
	return t.sorted()
}

type exactTally struct {
	entries domain.Tally
	index   map[string]int
}

func (t *exactTally) add(key string, n int) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Count += n
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, domain.TallyEntry{Key: key, Count: n})
}

func (t *exactTally) sorted() domain.Tally {
	sortTally(t.entries)
	return t.entries
}
