package domain

// Pagination defaults applied when a caller omits or overflows the page size.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageParams is 1-based offset pagination.
type PageParams struct {
	Page     int
	PageSize int
}

// Normalize clamps page to >= 1 and page size to [1, MaxPageSize],
// substituting DefaultPageSize for a non-positive size.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Page is one page of results plus whether another page follows.
type Page[T any] struct {
	Items  []T
	Total  int
	IsNext bool
}

// NewPage builds a Page, computing IsNext from the total row count.
func NewPage[T any](items []T, total int, params PageParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:  items,
		Total:  total,
		IsNext: total > params.Offset()+len(items),
	}
}
