package services

import (
	"strconv"
	"strings"

	"cinemashowings/internal/domain"
)

const movieDivider = "——————\n\n"

// RenderMessage walks dates, cinemas, movies and sessions and lays them out as chat
// text, starting a new page after every movie, cinema or date according to mode.
// Movies without sessions, cinemas without movies and dates without cinemas are skipped.
func RenderMessage(dates []domain.ShowDate, mode domain.SeparatorMode) domain.Message {
	var (
		p     pager
		total int
	)
	for _, d := range dates {
		var dateBlock pager
		dateBlock.write(d.FormattedDate() + "\n\n")
		dateIncluded := false

		for _, c := range d.Cinemas {
			var cinemaBlock pager
			cinemaBlock.write(c.Name + "\n\n")
			cinemaIncluded := false

			for _, m := range c.Movies {
				if len(m.ShowTimes) == 0 {
					continue
				}
				cinemaIncluded = true
				var b strings.Builder
				b.WriteString(m.FormattedTitle() + "\n")
				for _, st := range m.ShowTimes {
					b.WriteString(showTimeLine(st))
					total++
				}
				b.WriteString(movieDivider)
				cinemaBlock.write(b.String())
				if mode == domain.SeparatorMovie {
					cinemaBlock.write("\n\n")
					cinemaBlock.pageBreak()
				}
			}
			if !cinemaIncluded {
				continue
			}
			if mode == domain.SeparatorCinema {
				cinemaBlock.pageBreak()
			}
			dateIncluded = true
			dateBlock.append(cinemaBlock)
		}
		if !dateIncluded {
			continue
		}
		if mode == domain.SeparatorShowtime {
			dateBlock.write("\n\n")
			dateBlock.pageBreak()
		}
		p.append(dateBlock)
	}
	return domain.Message{Pages: p.pages(), Total: total}
}

func showTimeLine(st domain.ShowTime) string {
	line := st.Time + " hrs — " + st.Format
	if st.Seats != nil {
		if *st.Seats > 0 {
			line += " — " + strconv.Itoa(*st.Seats) + " asientos disponibles"
		} else {
			line += " — AGOTADA"
		}
	}
	return line + "\n"
}

// pager accumulates text segments and page boundaries.
type pager struct {
	segments []segment
}

type segment struct {
	text      string
	pageBreak bool
}

func (p *pager) write(s string) { p.segments = append(p.segments, segment{text: s}) }

func (p *pager) pageBreak() { p.segments = append(p.segments, segment{pageBreak: true}) }

func (p *pager) append(other pager) { p.segments = append(p.segments, other.segments...) }

// pages joins segments between breaks. A trailing empty page is not emitted.
func (p *pager) pages() []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, s := range p.segments {
		if s.pageBreak {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteString(s.text)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
