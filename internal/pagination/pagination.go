// Package pagination implements the offset/limit math shared by every list
// endpoint.
package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params holds the clamped skip/take pair for a query.
type Params struct {
	Skip int
	Take int
}

// Paginate clamps page to >= 1 and pageSize to [1, MaxPageSize], then
// computes the row offset. Invalid inputs are clamped, never rejected.
func Paginate(page, pageSize int) Params {
	return PaginateMax(page, pageSize, MaxPageSize)
}

// PaginateMax is Paginate with a caller-supplied upper bound on pageSize.
// The "no pageSize given" default lives at the transport layer; here a
// value below 1 is clamped to 1 like any other out-of-range input.
func PaginateMax(page, pageSize, maxPageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Params{
		Skip: (page - 1) * pageSize,
		Take: pageSize,
	}
}

// TotalPages returns ceil(total/take).
func TotalPages(total, take int) int {
	if take < 1 {
		return 0
	}
	return (total + take - 1) / take
}

// Page is the list envelope returned by the services.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPage assembles the envelope for one result window. Items is never nil
// so the JSON shape stays an array.
func NewPage[T any](items []T, total, page int, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	if page < 1 {
		page = 1
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   p.Take,
		TotalPages: TotalPages(total, p.Take),
	}
}
