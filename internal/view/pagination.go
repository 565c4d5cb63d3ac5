package view

import "github.com/dshills/sheetdiff/internal/changes"

// PageSize is how many rows of a sheet are shown initially, and how many more
// each ShowMore reveals.
const PageSize = 10

// Pagination tracks how many rows of each sheet are visible.
type Pagination struct {
	visible map[changes.SheetKey]int
}

// NewPagination starts every sheet of the collection at PageSize.
func NewPagination(records []changes.Record) *Pagination {
	p := &Pagination{visible: make(map[changes.SheetKey]int)}
	for _, r := range records {
		p.visible[r.Key()] = PageSize
	}
	return p
}

// Visible returns the visible count of key. Unknown keys report PageSize.
func (p *Pagination) Visible(key changes.SheetKey) int {
	if n, ok := p.visible[key]; ok {
		return n
	}
	return PageSize
}

// ShowMore grows the visible count of key by PageSize and returns it. The
// count is not capped by the sheet's size.
func (p *Pagination) ShowMore(key changes.SheetKey) int {
	n := p.Visible(key) + PageSize
	p.visible[key] = n
	return n
}

// Shown returns how many of total rows are drawn.
func (p *Pagination) Shown(key changes.SheetKey, total int) int {
	return min(p.Visible(key), total)
}

// Remaining returns how many of total rows are still hidden.
func (p *Pagination) Remaining(key changes.SheetKey, total int) int {
	return max(0, total-p.Visible(key))
}

// HasMore reports whether a "show more" affordance applies.
func (p *Pagination) HasMore(key changes.SheetKey, total int) bool {
	return p.Remaining(key, total) > 0
}
