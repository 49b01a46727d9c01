package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a requested page.
type Params struct {
	Page     int
	PageSize int
}

// Info is the pagination block returned with every list response.
type Info struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Normalize clamps page to >= 1 and page size to [1, MaxPageSize],
// substituting DefaultPageSize when unset.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit is the page size after normalization.
func (p Params) Limit() int {
	return p.Normalize().PageSize
}

// TotalPages is ceil(total/pageSize); zero items yields zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// NewInfo builds the pagination block for total matching rows.
func NewInfo(total int, p Params) Info {
	n := p.Normalize()
	return Info{
		Total:      total,
		Page:       n.Page,
		PageSize:   n.PageSize,
		TotalPages: TotalPages(total, n.PageSize),
	}
}

// Slice returns the items on the requested page of an already-filtered
// list, plus its pagination block. Pages past the end are empty.
func Slice[T any](items []T, p Params) ([]T, Info) {
	n := p.Normalize()
	info := NewInfo(len(items), n)

	start := n.Offset()
	if start >= len(items) {
		return []T{}, info
	}
	end := start + n.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], info
}

// FromQuery reads page and page_size query parameters. Unparseable values
// fall back to defaults the same way the list handlers always have.
func FromQuery(c *gin.Context) Params {
	p := Params{}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil {
		p.PageSize = v
	}
	return p.Normalize()
}
