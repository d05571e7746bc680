package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ShowTime is one scheduled screening of a movie.
// Seats is nil when the chain does not report availability; zero means sold out.
// swagger:model ShowTime
type ShowTime struct {
	Time   string `json:"time"`
	Format string `json:"format"`
	Seats  *int   `json:"seats,omitempty"`
}

// NewShowTime returns a ShowTime. Pass a nil seats pointer when availability is unknown.
func NewShowTime(time, format string, seats *int) ShowTime {
	st := ShowTime{Time: time, Format: format}
	if seats != nil {
		n := *seats
		st.Seats = &n
	}
	return st
}

// SoldOut reports whether the session is known to have no seats left.
func (s ShowTime) SoldOut() bool {
	return s.Seats != nil && *s.Seats <= 0
}

// Movie holds the upstream display title and the sessions that survived filtering.
// swagger:model Movie
type Movie struct {
	Title     string     `json:"title"`
	ShowTimes []ShowTime `json:"showtimes"`
}

// FormattedTitle is the title as shown in chat messages: upper case, hyphens as spaces.
func (m Movie) FormattedTitle() string {
	return strings.ReplaceAll(UpperTitle(m.Title), "-", " ")
}

// Cinema is one venue's listings, in upstream order.
// swagger:model Cinema
type Cinema struct {
	Name   string  `json:"name"`
	Movies []Movie `json:"movies"`
}

// ShowTimeCount returns the number of sessions across all movies.
func (c Cinema) ShowTimeCount() int {
	n := 0
	for _, m := range c.Movies {
		n += len(m.ShowTimes)
	}
	return n
}

// ShowDate groups cinemas under a free-form upstream date label.
// swagger:model ShowDate
type ShowDate struct {
	Date    string   `json:"date"`
	Cinemas []Cinema `json:"cinemas"`
}

// FormattedDate returns the date label with hyphens replaced by spaces.
func (d ShowDate) FormattedDate() string {
	return strings.ReplaceAll(d.Date, "-", " ")
}

// UpperTitle upper-cases s with Spanish casing rules.
func UpperTitle(s string) string {
	return cases.Upper(language.Spanish).String(s)
}
