package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"cinemashowings/internal/domain"
)

// undatedLabel heads country-wide results when no date was requested.
const undatedLabel = "hoy"

type showingsService struct {
	chains  []domain.ChainAdapter
	logger  *slog.Logger
	timeout time.Duration
}

// NewShowingsService aggregates chains in priority order: a tag known to more than one
// chain is routed to the first. timeout bounds each query; zero disables it.
func NewShowingsService(logger *slog.Logger, timeout time.Duration, chains ...domain.ChainAdapter) domain.ShowingsService {
	return &showingsService{chains: chains, logger: logger, timeout: timeout}
}

func (s *showingsService) Route(tag string) (domain.Chain, bool) {
	if a, ok := s.route(tag); ok {
		return a.Chain(), true
	}
	return "", false
}

func (s *showingsService) route(tag string) (domain.ChainAdapter, bool) {
	for _, a := range s.chains {
		if a.IsChain(tag) {
			return a, true
		}
	}
	return nil, false
}

// isZone reports whether any chain lists tag as a zone or city. Unknown tags are
// treated as zones too, which yields empty results from every chain.
func (s *showingsService) isZone(tag string) bool {
	for _, a := range s.chains {
		if a.Directory().IsZone(tag) {
			return true
		}
	}
	_, known := s.route(tag)
	return !known
}

func (s *showingsService) Search(ctx context.Context, q domain.Query) []domain.ShowDate {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.Debug("search", "movie", q.Movie, "date", q.Date, "cinema", q.Cinema, "format", q.Format)

	switch {
	case q.Cinema != "" && q.Movie == "" && q.Date != "":
		if s.isZone(q.Cinema) {
			return wrapDate(q.Date, s.collectCinemas(func(a domain.ChainAdapter) []domain.Cinema {
				return a.CinemaShowingsByDateAndZone(ctx, q.Cinema, q.Date, q.Format)
			}))
		}
		return s.single(q.Cinema, func(a domain.ChainAdapter) (domain.ShowDate, bool) {
			return a.CinemaShowingsByDate(ctx, q.Cinema, q.Date, q.Format)
		})

	case q.Cinema != "" && q.Date == "":
		if s.isZone(q.Cinema) {
			return s.collectDates(func(a domain.ChainAdapter) []domain.ShowDate {
				if q.Movie == "" {
					return a.CinemaShowingsByZone(ctx, q.Cinema, q.Format)
				}
				return a.ShowingByZone(ctx, q.Movie, q.Cinema, q.Format)
			})
		}
		a, _ := s.route(q.Cinema)
		if q.Movie == "" {
			return a.CinemaShowings(ctx, q.Cinema, q.Format)
		}
		return a.ShowingByCinema(ctx, q.Movie, q.Cinema, q.Format)

	case q.Cinema != "":
		if s.isZone(q.Cinema) {
			return wrapDate(q.Date, s.collectCinemas(func(a domain.ChainAdapter) []domain.Cinema {
				return a.ShowingsByZone(ctx, q.Movie, q.Date, q.Cinema, q.Format)
			}))
		}
		return s.single(q.Cinema, func(a domain.ChainAdapter) (domain.ShowDate, bool) {
			return a.Showings(ctx, q.Movie, q.Date, q.Cinema, q.Format)
		})

	default:
		label := q.Date
		if label == "" {
			label = undatedLabel
		}
		return wrapDate(label, s.collectCinemas(func(a domain.ChainAdapter) []domain.Cinema {
			return a.ShowingByDate(ctx, q.Movie, q.Date, q.Format)
		}))
	}
}

func (s *showingsService) MovieTotals(ctx context.Context, date, format string) domain.Tally {
	return MovieTotals(s.TotalCinemas(ctx, date, format))
}

func (s *showingsService) FormatTotals(ctx context.Context, date, format string) domain.Tally {
	return FormatTotals(s.TotalCinemas(ctx, date, format))
}

func (s *showingsService) CinemaTotals(ctx context.Context, date, format string) domain.Tally {
	return CinemaTotals(s.TotalCinemas(ctx, date, format))
}

func (s *showingsService) ZoneTags() []string {
	return s.tags(func(d *domain.Directory) []string { return d.ZoneTags() })
}

func (s *showingsService) CinemaTags() []string {
	return s.tags(func(d *domain.Directory) []string { return d.CinemaTags() })
}

func (s *showingsService) TotalCinemas(ctx context.Context, date, format string) []domain.Cinema {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.collectCinemas(func(a domain.ChainAdapter) []domain.Cinema {
		return a.Total(ctx, date, format)
	})
}

// single queries only the chain that owns the cinema.
func (s *showingsService) single(cinema string, query func(domain.ChainAdapter) (domain.ShowDate, bool)) []domain.ShowDate {
	a, ok := s.route(cinema)
	if !ok {
		return nil
	}
	sd, ok := query(a)
	if !ok {
		return nil
	}
	return []domain.ShowDate{sd}
}

// collectCinemas concatenates every chain's cinemas in chain priority order.
func (s *showingsService) collectCinemas(query func(domain.ChainAdapter) []domain.Cinema) []domain.Cinema {
	var out []domain.Cinema
	for _, a := range s.chains {
		out = append(out, query(a)...)
	}
	return out
}

// collectDates merges every chain's dates by label, keeping first-seen order.
func (s *showingsService) collectDates(query func(domain.ChainAdapter) []domain.ShowDate) []domain.ShowDate {
	var out []domain.ShowDate
	index := make(map[string]int)
	for _, a := range s.chains {
		for _, sd := range query(a) {
			if i, ok := index[sd.Date]; ok {
				out[i].Cinemas = append(out[i].Cinemas, sd.Cinemas...)
				continue
			}
			sd.Cinemas = slices.Clone(sd.Cinemas)
			index[sd.Date] = len(out)
			out = append(out, sd)
		}
	}
	return out
}

func (s *showingsService) tags(list func(*domain.Directory) []string) []string {
	var out []string
	for _, a := range s.chains {
		out = append(out, list(a.Directory())...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (s *showingsService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func wrapDate(date string, cinemas []domain.Cinema) []domain.ShowDate {
	if len(cinemas) == 0 {
		return nil
	}
	return []domain.ShowDate{{Date: date, Cinemas: cinemas}}
}
