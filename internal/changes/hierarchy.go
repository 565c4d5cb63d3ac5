package changes

import (
	"sort"

	"github.com/samber/lo"
)

// Summary counts change types over a collection.
type Summary struct {
	Total    int `json:"total"`
	Modified int `json:"modified"`
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
}

// Unrecognized is the number of records counted in Total only.
func (s Summary) Unrecognized() int {
	return s.Total - s.Modified - s.Added - s.Deleted
}

// Summarize counts records by change type. Records with an unrecognized type
// only count toward Total.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.Total++
		if !r.ChangeType.Known() {
			continue
		}
		switch r.ChangeType {
		case Modified:
			s.Modified++
		case Added:
			s.Added++
		case Deleted:
			s.Deleted++
		}
	}
	return s
}

// Hierarchy groups records by file, then sheet. Map order carries no meaning;
// use Files and Sheets for display order.
type Hierarchy map[string]map[string][]Record

// Build groups records into a Hierarchy. Within a sheet, records keep their
// relative source order and duplicates are kept as distinct rows.
func Build(records []Record) Hierarchy {
	h := make(Hierarchy)
	for _, r := range records {
		file := r.File()
		sheets, ok := h[file]
		if !ok {
			sheets = make(map[string][]Record)
			h[file] = sheets
		}
		sheet := r.SheetName()
		sheets[sheet] = append(sheets[sheet], r)
	}
	return h
}

// Files returns the file names in ascending order.
func (h Hierarchy) Files() []string {
	files := lo.Keys(h)
	sort.Strings(files)
	return files
}

// Sheets returns the sheet names of file in ascending order.
func (h Hierarchy) Sheets(file string) []string {
	sheets := lo.Keys(h[file])
	sort.Strings(sheets)
	return sheets
}

// Rows returns the records of one sheet in source order.
func (h Hierarchy) Rows(key SheetKey) []Record {
	return h[key.File][key.Sheet]
}

// Keys returns every file/sheet key in display order.
func (h Hierarchy) Keys() []SheetKey {
	var keys []SheetKey
	for _, file := range h.Files() {
		for _, sheet := range h.Sheets(file) {
			keys = append(keys, SheetKey{File: file, Sheet: sheet})
		}
	}
	return keys
}

// FileLen returns the number of records under file.
func (h Hierarchy) FileLen(file string) int {
	return lo.SumBy(lo.Values(h[file]), func(rows []Record) int {
		return len(rows)
	})
}

// Len returns the total number of records.
func (h Hierarchy) Len() int {
	n := 0
	for file := range h {
		n += h.FileLen(file)
	}
	return n
}
