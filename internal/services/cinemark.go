package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cinemashowings/internal/domain"
)

type cinemarkSource struct {
	fetcher     domain.CinemarkFetcher
	logger      *slog.Logger
	concurrency int
}

// NewCinemarkSource returns the Cinemark billboard source, which fetches one cinema per call.
func NewCinemarkSource(fetcher domain.CinemarkFetcher, logger *slog.Logger, concurrency int) domain.BillboardSource {
	return &cinemarkSource{fetcher: fetcher, logger: logger, concurrency: concurrency}
}

func (s *cinemarkSource) Chain() domain.Chain { return domain.ChainCinemark }

func (s *cinemarkSource) Billboards(ctx context.Context, cinemas []domain.DirectoryEntry) []domain.Billboard {
	ids := make([]string, 0, len(cinemas))
	for _, c := range cinemas {
		ids = append(ids, c.ID)
	}
	responses := fetchAll(ctx, s.concurrency, ids, s.fetcher.FetchBillboard, func(id string, err error) {
		s.logger.Warn("cinemark fetch failed", "chain", domain.ChainCinemark, "cinema", id, "err", err)
	})

	var out []domain.Billboard
	for _, c := range cinemas {
		resp, ok := responses[c.ID]
		if !ok {
			continue
		}
		out = append(out, mapCinemark(c, resp))
	}
	return out
}

func mapCinemark(entry domain.DirectoryEntry, resp domain.CinemarkResponse) domain.Billboard {
	bb := domain.Billboard{Cinema: entry, Name: entry.Name}
	for _, d := range resp {
		bd := domain.BillboardDate{Label: d.Date}
		if t, err := time.Parse(time.DateOnly, d.Date); err == nil {
			bd.Day, bd.Month = t.Day(), int(t.Month())
			bd.Label = monthLabel(bd.Day, bd.Month)
		}
		for _, m := range d.Movies {
			title := strings.TrimSpace(m.Title)
			if title == "" {
				continue
			}
			bm := domain.BillboardMovie{Key: movieKey(title), Title: title}
			for _, v := range m.Versions {
				format := cinemarkFormat(v.Title)
				for _, session := range v.Sessions {
					bm.ShowTimes = append(bm.ShowTimes, domain.NewShowTime(trimSeconds(session.Hour), format, session.SeatsAvailable))
				}
			}
			bd.Movies = append(bd.Movies, bm)
		}
		bb.Dates = append(bb.Dates, bd)
	}
	return bb
}

// cinemarkFormat takes the text between parentheses of a version title,
// e.g. "Doblada (2D DOB)" becomes "2D ESP".
func cinemarkFormat(title string) string {
	format := title
	if open := strings.Index(title, "("); open >= 0 {
		format = title[open+1:]
		if end := strings.LastIndex(format, ")"); end >= 0 {
			format = format[:end]
		}
	}
	return strings.NewReplacer("DOB", "ESP", "SUBT", "SUB").Replace(strings.TrimSpace(format))
}

// trimSeconds turns "HH:MM:SS" into "HH:MM".
func trimSeconds(hour string) string {
	if len(hour) > 5 {
		return hour[:5]
	}
	return hour
}
