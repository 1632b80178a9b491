package dto

// DefaultPageSize applies when a paginated request does not name a size.
const DefaultPageSize = 15

// PageParams is the pagination block shared by every list filter. The zero
// value means "not paginated": the full result set is returned. PageIndex
// is 1-based; values below 1 are normalized to 1.
type PageParams struct {
	Paginated bool `form:"paginated"`
	PageIndex int  `form:"pageIndex"`
	PageSize  int  `form:"pageSize"`
}

// Normalize applies the documented defaults in place.
func (p *PageParams) Normalize() {
	if !p.Paginated {
		return
	}
	if p.PageIndex < 1 {
		p.PageIndex = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
}

// Offset returns the row offset for the normalized page, or 0 when the
// request is not paginated.
func (p *PageParams) Offset() int {
	if !p.Paginated {
		return 0
	}
	return (p.PageIndex - 1) * p.PageSize
}
