package shared

import "math"

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata. The page is clamped to
// [1, TotalPages]; a zero-row listing still reports page 1.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = 10
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	page = ClampPage(page, totalPages)
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// ClampPage bounds page to [1, totalPages]. With no pages at all it
// returns 1 so an empty listing still has a current page.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// Next returns the clamped next page number.
func (p Pagination) Next() int {
	return ClampPage(p.Page+1, p.TotalPages)
}

// Prev returns the clamped previous page number.
func (p Pagination) Prev() int {
	return ClampPage(p.Page-1, p.TotalPages)
}
