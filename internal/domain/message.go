package domain

import (
	"fmt"
	"strings"
)

// SeparatorMode selects where a rendered message is split into pages.
type SeparatorMode string

const (
	SeparatorMovie    SeparatorMode = "MOVIE"
	SeparatorCinema   SeparatorMode = "CINEMA"
	SeparatorShowtime SeparatorMode = "SHOWTIME"
)

// ParseSeparatorMode accepts MOVIE, CINEMA or SHOWTIME in any case. Empty defaults to CINEMA.
func ParseSeparatorMode(s string) (SeparatorMode, error) {
	switch mode := SeparatorMode(strings.ToUpper(strings.TrimSpace(s))); mode {
	case "":
		return SeparatorCinema, nil
	case SeparatorMovie, SeparatorCinema, SeparatorShowtime:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSeparator, s)
	}
}

// Message is a rendered showings listing split into pages at the chosen boundaries.
// Total counts the sessions that appear in the text.
type Message struct {
	Pages []string `json:"pages"`
	Total int      `json:"total"`
}

// Text joins all pages into one string.
func (m Message) Text() string {
	return strings.Join(m.Pages, "")
}

// Header is the summary line sent ahead of the listing.
func (m Message) Header() string {
	return fmt.Sprintf("%d HORARIOS EN TOTAL \n——————\n", m.Total)
}

// Chunks returns the outgoing chat messages: the header is prepended to the first page
// and pages that are empty or whitespace-only are dropped.
func (m Message) Chunks() []string {
	pages := make([]string, 0, len(m.Pages)+1)
	if len(m.Pages) == 0 {
		pages = append(pages, m.Header())
	} else {
		pages = append(pages, m.Header()+m.Pages[0])
		pages = append(pages, m.Pages[1:]...)
	}
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
