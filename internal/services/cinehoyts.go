package services

import (
	"context"
	"log/slog"
	"strings"

	"cinemashowings/internal/domain"
)

type cinehoytsSource struct {
	fetcher     domain.CinehoytsFetcher
	dir         *domain.Directory
	logger      *slog.Logger
	concurrency int
}

// NewCinehoytsSource returns the Cinehoyts billboard source. Its backend answers per zone,
// so cinemas are grouped by zone and each zone is fetched once per query.
func NewCinehoytsSource(fetcher domain.CinehoytsFetcher, dir *domain.Directory, logger *slog.Logger, concurrency int) domain.BillboardSource {
	return &cinehoytsSource{fetcher: fetcher, dir: dir, logger: logger, concurrency: concurrency}
}

func (s *cinehoytsSource) Chain() domain.Chain { return domain.ChainCinehoyts }

func (s *cinehoytsSource) Billboards(ctx context.Context, cinemas []domain.DirectoryEntry) []domain.Billboard {
	zoneOf := make(map[string]string, len(cinemas))
	var zoneIDs []string
	for _, c := range cinemas {
		z, ok := s.dir.ZoneOf(c.Tag)
		if !ok {
			continue
		}
		zoneOf[c.Tag] = z.UpstreamID()
		zoneIDs = append(zoneIDs, z.UpstreamID())
	}

	responses := fetchAll(ctx, s.concurrency, zoneIDs, s.fetcher.FetchZone, func(zone string, err error) {
		s.logger.Warn("cinehoyts fetch failed", "chain", domain.ChainCinehoyts, "zone", zone, "err", err)
	})

	var out []domain.Billboard
	for _, c := range cinemas {
		resp, ok := responses[zoneOf[c.Tag]]
		if !ok {
			continue
		}
		upstream, ok := findCinehoytsCinema(resp.D.Cinemas, c.ID)
		if !ok {
			s.logger.Debug("cinema missing from zone listing", "chain", domain.ChainCinehoyts, "cinema", c.Tag)
			continue
		}
		out = append(out, mapCinehoyts(c, upstream))
	}
	return out
}

func findCinehoytsCinema(cinemas []domain.CinehoytsCinema, key string) (domain.CinehoytsCinema, bool) {
	for _, c := range cinemas {
		if c.Key == key {
			return c, true
		}
	}
	return domain.CinehoytsCinema{}, false
}

func mapCinehoyts(entry domain.DirectoryEntry, c domain.CinehoytsCinema) domain.Billboard {
	bb := domain.Billboard{Cinema: entry, Name: c.Name}
	if bb.Name == "" {
		bb.Name = entry.Name
	}
	for _, d := range c.Dates {
		bd := domain.BillboardDate{Label: strings.TrimSpace(d.ShowtimeDate)}
		if day, month, ok := parseDayMonth(bd.Label); ok {
			bd.Day, bd.Month = day, month
		}
		for _, m := range d.Movies {
			title := strings.TrimSpace(m.Title)
			if title == "" {
				title = strings.TrimSpace(m.Key)
			}
			key := m.Key
			if strings.TrimSpace(key) == "" {
				key = title
			}
			bm := domain.BillboardMovie{Key: movieKey(key), Title: title}
			if bm.Key == "" {
				continue
			}
			for _, f := range m.Formats {
				format := cinehoytsFormat(f.Name)
				for _, st := range f.Showtimes {
					bm.ShowTimes = append(bm.ShowTimes, domain.NewShowTime(st.Time, format, nil))
				}
			}
			bd.Movies = append(bd.Movies, bm)
		}
		bb.Dates = append(bb.Dates, bd)
	}
	return bb
}

// cinehoytsFormat maps Cinehoyts format names to the shared vocabulary.
func cinehoytsFormat(name string) string {
	switch name {
	case "ESP":
		return "2D ESP"
	case "SUBT":
		return "2D SUB"
	}
	return strings.NewReplacer("DOB", "ESP", "SUBT", "SUB").Replace(name)
}
