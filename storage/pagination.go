package storage

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination describes a page request on a list operation
type Pagination struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Normalize clamps the page request to sane bounds
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	return p
}

// Offset returns the row offset of the normalized page request
func (p Pagination) Offset() int {
	normalized := p.Normalize()

	return (normalized.Page - 1) * normalized.PageSize
}

// Limit returns the row limit of the normalized page request
func (p Pagination) Limit() int {
	return p.Normalize().PageSize
}
