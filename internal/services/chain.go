package services

import (
	"context"

	"cinemashowings/internal/domain"
)

type chainService struct {
	source domain.BillboardSource
	dir    *domain.Directory
}

// NewChainService answers normalized queries for one chain on top of its billboard source.
func NewChainService(source domain.BillboardSource, dir *domain.Directory) domain.ChainAdapter {
	return &chainService{source: source, dir: dir}
}

func (s *chainService) Chain() domain.Chain { return s.source.Chain() }

func (s *chainService) Directory() *domain.Directory { return s.dir }

func (s *chainService) IsChain(tag string) bool { return s.dir.Knows(tag) }

func (s *chainService) Showings(ctx context.Context, movie, date, cinema, format string) (domain.ShowDate, bool) {
	entry, ok := s.dir.Cinema(cinema)
	if !ok {
		return domain.ShowDate{}, false
	}
	for _, bb := range s.source.Billboards(ctx, []domain.DirectoryEntry{entry}) {
		d, ok := findDate(bb.Dates, date)
		if !ok {
			continue
		}
		if movies := filterMovies(d.Movies, movie, format); len(movies) > 0 {
			return domain.ShowDate{
				Date:    d.Label,
				Cinemas: []domain.Cinema{{Name: bb.Name, Movies: movies}},
			}, true
		}
	}
	return domain.ShowDate{}, false
}

func (s *chainService) ShowingsByZone(ctx context.Context, movie, date, zone, format string) []domain.Cinema {
	return s.cinemasOn(ctx, s.dir.CinemasIn(zone), movie, date, format)
}

func (s *chainService) ShowingByDate(ctx context.Context, movie, date, format string) []domain.Cinema {
	return s.cinemasOn(ctx, s.dir.AllCinemas(), movie, date, format)
}

func (s *chainService) ShowingByCinema(ctx context.Context, movie, cinema, format string) []domain.ShowDate {
	entry, ok := s.dir.Cinema(cinema)
	if !ok {
		return nil
	}
	return s.datesAcross(ctx, []domain.DirectoryEntry{entry}, movie, format)
}

func (s *chainService) ShowingByZone(ctx context.Context, movie, zone, format string) []domain.ShowDate {
	return s.datesAcross(ctx, s.dir.CinemasIn(zone), movie, format)
}

func (s *chainService) CinemaShowings(ctx context.Context, cinema, format string) []domain.ShowDate {
	return s.ShowingByCinema(ctx, "", cinema, format)
}

func (s *chainService) CinemaShowingsByDate(ctx context.Context, cinema, date, format string) (domain.ShowDate, bool) {
	return s.Showings(ctx, "", date, cinema, format)
}

func (s *chainService) CinemaShowingsByZone(ctx context.Context, zone, format string) []domain.ShowDate {
	return s.ShowingByZone(ctx, "", zone, format)
}

func (s *chainService) CinemaShowingsByDateAndZone(ctx context.Context, zone, date, format string) []domain.Cinema {
	return s.ShowingsByZone(ctx, "", date, zone, format)
}

func (s *chainService) Total(ctx context.Context, date, format string) []domain.Cinema {
	return s.cinemasOn(ctx, s.dir.TotalsCinemas(), "", date, format)
}

// cinemasOn lists, in directory order, the cinemas with at least one matching movie on date.
func (s *chainService) cinemasOn(ctx context.Context, cinemas []domain.DirectoryEntry, movie, date, format string) []domain.Cinema {
	if len(cinemas) == 0 {
		return nil
	}
	var out []domain.Cinema
	for _, bb := range s.source.Billboards(ctx, cinemas) {
		d, ok := findDate(bb.Dates, date)
		if !ok {
			continue
		}
		if movies := filterMovies(d.Movies, movie, format); len(movies) > 0 {
			out = append(out, domain.Cinema{Name: bb.Name, Movies: movies})
		}
	}
	return out
}

// datesAcross groups matching movies by date label, in first-seen order, across cinemas.
func (s *chainService) datesAcross(ctx context.Context, cinemas []domain.DirectoryEntry, movie, format string) []domain.ShowDate {
	if len(cinemas) == 0 {
		return nil
	}
	var out []domain.ShowDate
	index := make(map[string]int)
	for _, bb := range s.source.Billboards(ctx, cinemas) {
		for _, d := range bb.Dates {
			movies := filterMovies(d.Movies, movie, format)
			if len(movies) == 0 {
				continue
			}
			i, ok := index[d.Label]
			if !ok {
				i = len(out)
				index[d.Label] = i
				out = append(out, domain.ShowDate{Date: d.Label})
			}
			out[i].Cinemas = append(out[i].Cinemas, domain.Cinema{Name: bb.Name, Movies: movies})
		}
	}
	return out
}

// findDate returns the first listed date matching the request. An empty request
// selects the first listed date.
func findDate(dates []domain.BillboardDate, date string) (domain.BillboardDate, bool) {
	for _, d := range dates {
		if matchDate(date, d) {
			return d, true
		}
	}
	return domain.BillboardDate{}, false
}

// filterMovies keeps the movies whose key matches the query, each restricted to
// the sessions of a matching format. Movies left without sessions are dropped.
func filterMovies(movies []domain.BillboardMovie, movie, format string) []domain.Movie {
	query := movieKey(movie)
	var out []domain.Movie
	for _, m := range movies {
		if !matchTitle(query, m.Key) {
			continue
		}
		var shows []domain.ShowTime
		for _, st := range m.ShowTimes {
			if matchFormat(format, st.Format) {
				shows = append(shows, domain.NewShowTime(st.Time, st.Format, st.Seats))
			}
		}
		if len(shows) > 0 {
			out = append(out, domain.Movie{Title: m.Title, ShowTimes: shows})
		}
	}
	return out
}
