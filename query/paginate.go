package query

const DefaultPageSize = 10

// Page is one slice of a filtered and sorted result.
type Page[R any] struct {
	Items      []R `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// Paginate returns page n (1-based) of records. Pages past the end are empty.
func Paginate[R any](records []R, n, size int) Page[R] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n < 1 {
		n = 1
	}
	total := len(records)
	p := Page[R]{
		Items:      []R{},
		Page:       n,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
		Total:      total,
	}
	if n-1 >= p.TotalPages {
		return p
	}
	start := (n - 1) * size
	end := min(start+size, total)
	p.Items = records[start:end]
	return p
}
