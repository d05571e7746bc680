package helpers

import (
	"net/http"
	"strconv"

	"cinemashowings/internal/domain"
)

// Leaderboard paging: page is 1-based, page_size counts tally rows.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ParsePagination picks the slice of a totals leaderboard a client asked for.
// A missing or non-positive page or page_size uses the default; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return fallback
}

// PaginationMeta tells a client where a leaderboard page sits among all tally rows.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta describes page p of a leaderboard with rows entries.
func NewPaginationMeta(p domain.PaginationParams, rows int) PaginationMeta {
	meta := PaginationMeta{Page: p.Page, PageSize: p.PageSize, Total: rows}
	if p.PageSize > 0 {
		meta.TotalPages = (rows + p.PageSize - 1) / p.PageSize
	}
	return meta
}
