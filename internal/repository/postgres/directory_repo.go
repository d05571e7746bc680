package postgres

import (
	"context"
	"database/sql"
	"slices"

	"github.com/lib/pq"

	"cinemashowings/internal/domain"
)

type directoryRepository struct {
	DB *sql.DB
}

// NewDirectoryRepository returns a domain.DirectoryRepository that builds chain
// directories from the cinemas and towns tables. A town's zone is the zone tag and
// its city, when set, the macro-zone the zone belongs to.
func NewDirectoryRepository(db *sql.DB) domain.DirectoryRepository {
	return &directoryRepository{DB: db}
}

func (r *directoryRepository) LoadDirectories(ctx context.Context, chains []domain.Chain) ([]*domain.Directory, error) {
	names := make([]string, len(chains))
	for i, c := range chains {
		names[i] = string(c)
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT c.chain, t.zone, COALESCE(t.city, ''), c.keyword, c.name, c.external_id
		 FROM cinemas c
		 JOIN towns t ON t.id = c.town_id
		 WHERE c.chain = ANY($1) AND c.active
		 ORDER BY c.chain, t.zone, c.name`, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byChain := make(map[domain.Chain]*domain.Directory)
	for rows.Next() {
		var (
			chain      domain.Chain
			zone, city string
			cinema     domain.DirectoryEntry
		)
		if err := rows.Scan(&chain, &zone, &city, &cinema.Tag, &cinema.Name, &cinema.ID); err != nil {
			return nil, err
		}
		dir, ok := byChain[chain]
		if !ok {
			dir = &domain.Directory{Chain: chain}
			byChain[chain] = dir
		}
		addCinema(dir, zone, cinema)
		if city != "" && city != zone {
			addToMacroZone(dir, city, zone)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []*domain.Directory
	for _, c := range chains {
		if dir, ok := byChain[c]; ok {
			out = append(out, dir)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func addCinema(dir *domain.Directory, zone string, cinema domain.DirectoryEntry) {
	for i := range dir.Zones {
		if dir.Zones[i].Tag == zone {
			dir.Zones[i].Cinemas = append(dir.Zones[i].Cinemas, cinema)
			return
		}
	}
	dir.Zones = append(dir.Zones, domain.Zone{Tag: zone, Name: zone, Cinemas: []domain.DirectoryEntry{cinema}})
}

func addToMacroZone(dir *domain.Directory, city, zone string) {
	for i := range dir.MacroZones {
		if dir.MacroZones[i].Tag == city {
			if !slices.Contains(dir.MacroZones[i].Zones, zone) {
				dir.MacroZones[i].Zones = append(dir.MacroZones[i].Zones, zone)
			}
			return
		}
	}
	dir.MacroZones = append(dir.MacroZones, domain.MacroZone{Tag: city, Name: city, Zones: []string{zone}})
}
