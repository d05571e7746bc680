// Package directory loads the static zone and cinema directories of each chain.
package directory

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"cinemashowings/internal/domain"
)

//go:embed data/*.yaml
var embedded embed.FS

// Embedded returns the directories bundled with the binary, one per chain.
func Embedded() ([]*domain.Directory, error) {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded directories: %w", err)
	}
	var out []*domain.Directory
	for _, e := range entries {
		data, err := embedded.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		dirs, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		out = append(out, dirs...)
	}
	return out, nil
}

// LoadFile reads directories from a YAML file. The file may hold several
// documents separated by "---", one per chain.
func LoadFile(name string) ([]*domain.Directory, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates every YAML document in data.
func Parse(data []byte) ([]*domain.Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*domain.Directory
	for {
		var d domain.Directory
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := Validate(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	if len(out) == 0 {
		return nil, errors.New("no directory documents")
	}
	return out, nil
}

// Validate checks that a directory is usable: known chain, unique zone tags,
// cinemas with tag and id, and macro-zones that point at existing zones.
func Validate(d *domain.Directory) error {
	switch d.Chain {
	case domain.ChainCinehoyts, domain.ChainCinemark:
	default:
		return fmt.Errorf("unknown chain %q", d.Chain)
	}
	zones := make(map[string]struct{}, len(d.Zones))
	for _, z := range d.Zones {
		if z.Tag == "" {
			return fmt.Errorf("%s: zone without tag", d.Chain)
		}
		if _, dup := zones[z.Tag]; dup {
			return fmt.Errorf("%s: duplicate zone %q", d.Chain, z.Tag)
		}
		zones[z.Tag] = struct{}{}
		for _, c := range z.Cinemas {
			if c.Tag == "" || c.ID == "" {
				return fmt.Errorf("%s: zone %q has a cinema without tag or id", d.Chain, z.Tag)
			}
		}
	}
	for _, mz := range d.MacroZones {
		if _, clash := zones[mz.Tag]; clash {
			return fmt.Errorf("%s: macro zone %q shadows a zone", d.Chain, mz.Tag)
		}
		for _, zt := range mz.Zones {
			if _, ok := zones[zt]; !ok {
				return fmt.Errorf("%s: macro zone %q references unknown zone %q", d.Chain, mz.Tag, zt)
			}
		}
	}
	for _, tag := range d.TotalCinemas {
		if _, ok := d.Cinema(tag); !ok {
			return fmt.Errorf("%s: totals cinema %q is not listed in any zone", d.Chain, tag)
		}
	}
	return nil
}

// ByChain indexes directories by chain. Later entries replace earlier ones.
func ByChain(dirs []*domain.Directory) map[domain.Chain]*domain.Directory {
	out := make(map[domain.Chain]*domain.Directory, len(dirs))
	for _, d := range dirs {
		out[d.Chain] = d
	}
	return out
}
