// Package service implements the application's business logic on top of the
// repository layer.
package service

// Pagination carries page metadata for a listing response.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Prev        int   `json:"prev"`
	Next        int   `json:"next"`
	Pages       []int `json:"pages"`
	TotalCount  int64 `json:"total_count"`
}

// Offset converts a 1-based page number into a row offset.
func Offset(limit, page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// BuildPagination computes page metadata. totalPages = ceil(total/limit);
// the current page and prev/next links are clamped into [1, totalPages].
func BuildPagination(limit, page int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	prev := page - 1
	if prev < 1 {
		prev = 1
	}
	next := page + 1
	if next > totalPages {
		next = totalPages
	}

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Prev:        prev,
		Next:        next,
		Pages:       pages,
		TotalCount:  total,
	}
}
