package domain

import "context"

// CinehoytsFetcher fetches the now-playing listings of one Cinehoyts zone (or a test double).
type CinehoytsFetcher interface {
	FetchZone(ctx context.Context, zoneID string) (CinehoytsResponse, error)
}

// CinehoytsRequest is the GetNowPlayingByCity request body.
type CinehoytsRequest struct {
	CityKey string `json:"claveCiudad"`
	VIP     bool   `json:"esVIP"`
}

// CinehoytsResponse is the GetNowPlayingByCity response shape.
type CinehoytsResponse struct {
	D CinehoytsPayload `json:"d"`
}

// CinehoytsPayload wraps the cinemas of a zone.
type CinehoytsPayload struct {
	Cinemas []CinehoytsCinema `json:"Cinemas"`
}

// CinehoytsCinema is one venue; Key matches the directory tag.
type CinehoytsCinema struct {
	Key   string          `json:"Key"`
	Name  string          `json:"Name"`
	Dates []CinehoytsDate `json:"Dates"`
}

// CinehoytsDate is a listed day, e.g. ShowtimeDate "05 marzo".
type CinehoytsDate struct {
	ShowtimeDate string           `json:"ShowtimeDate"`
	Movies       []CinehoytsMovie `json:"Movies"`
}

// CinehoytsMovie is a movie on a given day.
type CinehoytsMovie struct {
	Key     string            `json:"Key"`
	Title   string            `json:"Title"`
	Formats []CinehoytsFormat `json:"Formats"`
}

// CinehoytsFormat groups sessions sharing a presentation format.
type CinehoytsFormat struct {
	Name      string              `json:"Name"`
	Showtimes []CinehoytsShowtime `json:"Showtimes"`
}

// CinehoytsShowtime is a single session.
type CinehoytsShowtime struct {
	Time string `json:"Time"`
}
