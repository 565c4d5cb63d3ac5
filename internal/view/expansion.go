package view

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/dshills/sheetdiff/internal/changes"
)

// AutoExpandFileLimit is the number of distinct files at which a new
// collection stops being fully expanded.
const AutoExpandFileLimit = 5

// Expansion tracks which files and sheets are expanded.
type Expansion struct {
	files  *set.Set[string]
	sheets *set.Set[changes.SheetKey]
}

// NewExpansion computes the default expansion of an unfiltered collection.
// Fewer than AutoExpandFileLimit files are expanded entirely; otherwise only
// the first record's file and its sheets are.
func NewExpansion(records []changes.Record) *Expansion {
	e := &Expansion{
		files:  set.New[string](0),
		sheets: set.New[changes.SheetKey](0),
	}
	if len(records) == 0 {
		return e
	}

	files := lo.Uniq(lo.Map(records, func(r changes.Record, _ int) string {
		return r.File()
	}))
	keys := lo.Uniq(lo.Map(records, func(r changes.Record, _ int) changes.SheetKey {
		return r.Key()
	}))

	if len(files) < AutoExpandFileLimit {
		for _, f := range files {
			e.files.Insert(f)
		}
		for _, k := range keys {
			e.sheets.Insert(k)
		}
		return e
	}

	first := records[0].File()
	e.files.Insert(first)
	for _, k := range keys {
		if k.File == first {
			e.sheets.Insert(k)
		}
	}
	return e
}

// FileExpanded reports whether file is expanded.
func (e *Expansion) FileExpanded(file string) bool {
	return e.files.Contains(file)
}

// SheetExpanded reports whether the sheet is expanded. It does not look at
// the sheet's file.
func (e *Expansion) SheetExpanded(key changes.SheetKey) bool {
	return e.sheets.Contains(key)
}

// ToggleFile flips file and returns its new state. Its sheets are untouched.
func (e *Expansion) ToggleFile(file string) bool {
	if e.files.Remove(file) {
		return false
	}
	e.files.Insert(file)
	return true
}

// ToggleSheet flips one sheet and returns its new state.
func (e *Expansion) ToggleSheet(key changes.SheetKey) bool {
	if e.sheets.Remove(key) {
		return false
	}
	e.sheets.Insert(key)
	return true
}

// ExpandedFiles returns the number of expanded files.
func (e *Expansion) ExpandedFiles() int {
	return e.files.Size()
}

// ExpandedSheets returns the number of expanded sheets.
func (e *Expansion) ExpandedSheets() int {
	return e.sheets.Size()
}
