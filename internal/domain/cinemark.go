package domain

import "context"

// CinemarkFetcher fetches the billboard of one Cinemark cinema by its numeric id (or a test double).
type CinemarkFetcher interface {
	FetchBillboard(ctx context.Context, cinemaID string) (CinemarkResponse, error)
}

// CinemarkResponse is the billboard API response: one entry per date.
type CinemarkResponse []CinemarkDate

// CinemarkDate is a listed day; Date is formatted YYYY-MM-DD.
type CinemarkDate struct {
	Date   string          `json:"date"`
	Movies []CinemarkMovie `json:"movies"`
}

// CinemarkMovie is a movie on a given day.
type CinemarkMovie struct {
	Title    string            `json:"title"`
	Versions []CinemarkVersion `json:"movie_versions"`
}

// CinemarkVersion is a format group, e.g. Title "Doblada (2D DOB)".
type CinemarkVersion struct {
	Title    string            `json:"title"`
	Sessions []CinemarkSession `json:"sessions"`
}

// CinemarkSession is a single session. Hour is HH:MM:SS.
type CinemarkSession struct {
	Hour           string `json:"hour"`
	SeatsAvailable *int   `json:"seats_available"`
}
