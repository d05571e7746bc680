package services

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"cinemashowings/internal/domain"
)

// monthNames maps Spanish month names to their number (index + 1).
var monthNames = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// movieKey normalizes a title or query for matching: lower case, NFC, spaces as hyphens.
func movieKey(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return strings.ReplaceAll(cases.Lower(language.Spanish).String(s), " ", "-")
}

// matchTitle reports whether the query and the movie key contain one another.
// An empty query matches every movie; an empty key matches no query.
func matchTitle(query, key string) bool {
	if query == "" {
		return true
	}
	if key == "" {
		return false
	}
	return strings.Contains(query, key) || strings.Contains(key, query)
}

// matchFormat reports whether the normalized format contains the query.
func matchFormat(query, format string) bool {
	q := domain.UpperTitle(strings.TrimSpace(query))
	return q == "" || strings.Contains(format, q)
}

// monthNumber accepts "3", "03" or a Spanish month name.
func monthNumber(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 1 && n <= 12
	}
	s = cases.Lower(language.Spanish).String(s)
	for i, name := range monthNames {
		if name == s {
			return i + 1, true
		}
	}
	return 0, false
}

// parseDayMonth reads "5-marzo", "05 marzo" or "5-3". Anything else fails.
func parseDayMonth(s string) (day, month int, ok bool) {
	parts := strings.Split(dateLabelKey(s), "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	month, ok = monthNumber(parts[1])
	if !ok {
		return 0, 0, false
	}
	return day, month, true
}

var dateSeparators = strings.NewReplacer("-", " ", "/", " ")

// dateLabelKey folds a date label for comparison: trimmed, lower case, spaces and
// slashes as hyphens and no leading zero on the day.
func dateLabelKey(s string) string {
	s = cases.Lower(language.Spanish).String(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(dateSeparators.Replace(s)), "-")
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return s
}

// matchDate compares a requested date with a listed one, first by label and then by
// day and month. An empty request matches any date.
func matchDate(query string, d domain.BillboardDate) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	if dateLabelKey(query) == dateLabelKey(d.Label) {
		return true
	}
	day, month, ok := parseDayMonth(query)
	return ok && d.Day == day && d.Month == month
}

// monthLabel renders day and month the way chain listings label dates, e.g. "05 marzo".
func monthLabel(day, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%02d %s", day, monthNames[month-1])
}
