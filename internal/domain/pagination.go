package domain

// PaginationParams holds offset-based pagination parameters for leaderboard listings.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the entry offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Page returns the entries of t that fall on page p. Pages past the end are empty.
func (t Tally) Page(p PaginationParams) Tally {
	start := min(p.Offset(), len(t))
	end := min(start+p.PageSize, len(t))
	if p.PageSize <= 0 {
		end = len(t)
	}
	return t[start:end]
}
