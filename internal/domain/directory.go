package domain

import (
	"context"
	"slices"
)

// DirectoryEntry is a static cinema record. ID is the chain-internal key used upstream.
// swagger:model DirectoryEntry
type DirectoryEntry struct {
	Tag  string `json:"tag" yaml:"tag"`
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// Zone is a named group of cinemas within one chain. ID is what the chain's backend
// expects when it is queried per zone; it defaults to Tag.
type Zone struct {
	Tag     string           `yaml:"tag"`
	Name    string           `yaml:"name"`
	ID      string           `yaml:"id"`
	Cinemas []DirectoryEntry `yaml:"cinemas"`
}

// UpstreamID returns the zone key sent to the chain backend.
func (z Zone) UpstreamID() string {
	if z.ID != "" {
		return z.ID
	}
	return z.Tag
}

// MacroZone expands to several zones, e.g. a city spanning multiple zones.
type MacroZone struct {
	Tag   string   `yaml:"tag"`
	Name  string   `yaml:"name"`
	Zones []string `yaml:"zones"`
}

// Directory is one chain's read-only venue directory. Build it once at startup
// and share it; nothing mutates it after construction.
type Directory struct {
	Chain      Chain       `yaml:"chain"`
	Zones      []Zone      `yaml:"zones"`
	MacroZones []MacroZone `yaml:"macro_zones"`
	// TotalCinemas restricts chain-wide totals to these cinema tags when non-empty.
	TotalCinemas []string `yaml:"total_cinemas"`
}

// DirectoryRepository loads chain directories from a persistent store.
type DirectoryRepository interface {
	LoadDirectories(ctx context.Context, chains []Chain) ([]*Directory, error)
}

// Cinema looks a cinema up by tag.
func (d *Directory) Cinema(tag string) (DirectoryEntry, bool) {
	for _, z := range d.Zones {
		for _, c := range z.Cinemas {
			if c.Tag == tag {
				return c, true
			}
		}
	}
	return DirectoryEntry{}, false
}

// ZoneOf returns the first zone listing the cinema tag.
func (d *Directory) ZoneOf(cinemaTag string) (Zone, bool) {
	for _, z := range d.Zones {
		for _, c := range z.Cinemas {
			if c.Tag == cinemaTag {
				return z, true
			}
		}
	}
	return Zone{}, false
}

// Zone looks a zone up by tag.
func (d *Directory) Zone(tag string) (Zone, bool) {
	for _, z := range d.Zones {
		if z.Tag == tag {
			return z, true
		}
	}
	return Zone{}, false
}

// ExpandZone resolves a zone or macro-zone tag into its constituent zones, in directory order.
func (d *Directory) ExpandZone(tag string) []Zone {
	if z, ok := d.Zone(tag); ok {
		return []Zone{z}
	}
	for _, mz := range d.MacroZones {
		if mz.Tag != tag {
			continue
		}
		var out []Zone
		for _, zt := range mz.Zones {
			if z, ok := d.Zone(zt); ok {
				out = append(out, z)
			}
		}
		return out
	}
	return nil
}

// CinemasIn lists the cinemas of a zone or macro-zone, without duplicates.
func (d *Directory) CinemasIn(zoneTag string) []DirectoryEntry {
	return uniqueCinemas(d.ExpandZone(zoneTag))
}

// AllCinemas lists every cinema of the chain in directory order, without duplicates.
func (d *Directory) AllCinemas() []DirectoryEntry {
	return uniqueCinemas(d.Zones)
}

// TotalsCinemas lists the cinemas that feed chain-wide totals.
func (d *Directory) TotalsCinemas() []DirectoryEntry {
	if len(d.TotalCinemas) == 0 {
		return d.AllCinemas()
	}
	var out []DirectoryEntry
	for _, tag := range d.TotalCinemas {
		if c, ok := d.Cinema(tag); ok {
			out = append(out, c)
		}
	}
	return out
}

// IsZone reports whether tag names a zone or macro-zone.
func (d *Directory) IsZone(tag string) bool {
	if _, ok := d.Zone(tag); ok {
		return true
	}
	return slices.ContainsFunc(d.MacroZones, func(mz MacroZone) bool { return mz.Tag == tag })
}

// Knows reports whether tag is a cinema, zone or macro-zone of this chain.
func (d *Directory) Knows(tag string) bool {
	if tag == "" {
		return false
	}
	if _, ok := d.Cinema(tag); ok {
		return true
	}
	return d.IsZone(tag)
}

// ZoneTags lists zone and macro-zone tags in directory order.
func (d *Directory) ZoneTags() []string {
	out := make([]string, 0, len(d.Zones)+len(d.MacroZones))
	for _, z := range d.Zones {
		out = append(out, z.Tag)
	}
	for _, mz := range d.MacroZones {
		out = append(out, mz.Tag)
	}
	return out
}

// CinemaTags lists cinema tags in directory order.
func (d *Directory) CinemaTags() []string {
	cinemas := d.AllCinemas()
	out := make([]string, 0, len(cinemas))
	for _, c := range cinemas {
		out = append(out, c.Tag)
	}
	return out
}

func uniqueCinemas(zones []Zone) []DirectoryEntry {
	seen := make(map[string]struct{})
	var out []DirectoryEntry
	for _, z := range zones {
		for _, c := range z.Cinemas {
			if _, ok := seen[c.Tag]; ok {
				continue
			}
			seen[c.Tag] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
