package models

// SortOrder matches the backend's `order` query parameter values.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Paginated is the backend's list response envelope. A per_page of -1
// means "all results in one page".
type Paginated[T any] struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

// HasMore reports whether another page exists after the current one.
// Mirrors the backend's paging contract: total/per_page > page.
func (p Paginated[T]) HasMore() bool {
	if p.PerPage <= 0 {
		return false
	}
	return float64(p.Total)/float64(p.PerPage) > float64(p.Page)
}
