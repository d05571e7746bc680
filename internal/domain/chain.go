package domain

import "context"

// Chain identifies a cinema operator backend.
type Chain string

const (
	ChainCinehoyts Chain = "CINEHOYTS"
	ChainCinemark  Chain = "CINEMARK"
)

// Query carries the already-parsed parameters of a showings request.
// Empty fields mean "no filter".
type Query struct {
	Movie  string `json:"movie"`
	Date   string `json:"date"`
	Cinema string `json:"cinema"`
	Format string `json:"format"`
}

// Billboard is one cinema's upstream listings mapped into chain-neutral form,
// before any movie, date or format filtering.
type Billboard struct {
	Cinema DirectoryEntry
	Name   string
	Dates  []BillboardDate
}

// BillboardDate is one listed day. Day and Month are zero when the label could not be parsed.
type BillboardDate struct {
	Label  string
	Day    int
	Month  int
	Movies []BillboardMovie
}

// BillboardMovie keeps the raw display title plus the key used for title matching.
type BillboardMovie struct {
	Key       string
	Title     string
	ShowTimes []ShowTime
}

// BillboardSource fetches one chain's listings. Cinemas whose fetch failed, or that
// the upstream response does not mention, are left out of the result; order follows
// the requested cinemas.
type BillboardSource interface {
	Chain() Chain
	Billboards(ctx context.Context, cinemas []DirectoryEntry) []Billboard
}

// ChainAdapter answers normalized queries against one chain. Implementations never
// return upstream errors: failures degrade to empty results.
type ChainAdapter interface {
	Chain() Chain
	Directory() *Directory
	// IsChain reports whether tag is a cinema, zone or city known to this chain.
	IsChain(tag string) bool

	Showings(ctx context.Context, movie, date, cinema, format string) (ShowDate, bool)
	ShowingsByZone(ctx context.Context, movie, date, zone, format string) []Cinema
	ShowingByDate(ctx context.Context, movie, date, format string) []Cinema
	ShowingByCinema(ctx context.Context, movie, cinema, format string) []ShowDate
	ShowingByZone(ctx context.Context, movie, zone, format string) []ShowDate

	CinemaShowings(ctx context.Context, cinema, format string) []ShowDate
	CinemaShowingsByDate(ctx context.Context, cinema, date, format string) (ShowDate, bool)
	CinemaShowingsByZone(ctx context.Context, zone, format string) []ShowDate
	CinemaShowingsByDateAndZone(ctx context.Context, zone, date, format string) []Cinema

	Total(ctx context.Context, date, format string) []Cinema
}

// ShowingsService is the chain-agnostic query surface used by the delivery layer.
type ShowingsService interface {
	Route(tag string) (Chain, bool)
	Search(ctx context.Context, q Query) []ShowDate
	// TotalCinemas returns every chain's unfiltered bill for date, concatenated.
	TotalCinemas(ctx context.Context, date, format string) []Cinema
	MovieTotals(ctx context.Context, date, format string) Tally
	FormatTotals(ctx context.Context, date, format string) Tally
	CinemaTotals(ctx context.Context, date, format string) Tally
	ZoneTags() []string
	CinemaTags() []string
}
