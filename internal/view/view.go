package view

import (
	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/describe"
)

// Empty-state messages.
const (
	MsgNoChanges     = "No changes detected"
	MsgNoMatchFilter = "No changes match the selected filter"
)

// View is a rendered snapshot of a session.
type View struct {
	Summary changes.Summary `json:"summary"`
	Filter  string          `json:"filter"`
	Empty   string          `json:"empty,omitempty"`
	Files   []FileView      `json:"files"`
}

// FileView is one file of the hierarchy.
type FileView struct {
	Name     string      `json:"name"`
	Expanded bool        `json:"expanded"`
	Count    int         `json:"count"`
	Sheets   []SheetView `json:"sheets"`
}

// SheetView is one sheet of a file. Rows is only populated when both the file
// and the sheet are expanded, and holds at most Shown rows.
type SheetView struct {
	File         string `json:"file"`
	Name         string `json:"name"`
	Expanded     bool   `json:"expanded"`
	Total        int    `json:"total"`
	VisibleCount int    `json:"visibleCount"`
	Shown        int    `json:"shown"`
	Remaining    int    `json:"remaining"`
	HasMore      bool   `json:"hasMore"`
	Rows         []Row  `json:"rows,omitempty"`
}

// Key returns the sheet's composite key.
func (sv SheetView) Key() changes.SheetKey {
	return changes.SheetKey{File: sv.File, Sheet: sv.Name}
}

// Row is one renderable change.
type Row struct {
	Row         string             `json:"row"`
	Col         string             `json:"col"`
	Old         Cell               `json:"old"`
	New         Cell               `json:"new"`
	Description string             `json:"description"`
	ChangeType  changes.ChangeType `json:"changeType"`
	ValueDiff   string             `json:"valueDiff,omitempty"`
}

// View projects the session's current state.
func (s *Session) View() *View {
	h := s.Hierarchy()

	v := &View{
		Summary: s.summary,
		Filter:  s.filter.Label(),
		Files:   []FileView{},
	}
	if h.Len() == 0 {
		v.Empty = MsgNoChanges
		if s.filter.Active() {
			v.Empty = MsgNoMatchFilter
		}
		return v
	}

	for _, file := range h.Files() {
		fv := FileView{
			Name:     file,
			Expanded: s.expansion.FileExpanded(file),
			Count:    h.FileLen(file),
		}
		for _, sheet := range h.Sheets(file) {
			fv.Sheets = append(fv.Sheets, s.sheetView(h, changes.SheetKey{File: file, Sheet: sheet}, fv.Expanded))
		}
		v.Files = append(v.Files, fv)
	}
	return v
}

func (s *Session) sheetView(h changes.Hierarchy, key changes.SheetKey, fileExpanded bool) SheetView {
	records := h.Rows(key)
	total := len(records)

	sv := SheetView{
		File:         key.File,
		Name:         key.Sheet,
		Expanded:     s.expansion.SheetExpanded(key),
		Total:        total,
		VisibleCount: s.pagination.Visible(key),
		Shown:        s.pagination.Shown(key, total),
		Remaining:    s.pagination.Remaining(key, total),
		HasMore:      s.pagination.HasMore(key, total),
	}
	if !fileExpanded || !sv.Expanded {
		return sv
	}

	sv.Rows = make([]Row, 0, sv.Shown)
	for _, r := range records[:sv.Shown] {
		sv.Rows = append(sv.Rows, s.row(r))
	}
	return sv
}

func (s *Session) row(r changes.Record) Row {
	row := Row{
		Row:         r.Row.String(),
		Col:         r.Col.String(),
		Old:         FormatCell(r.OldValue.String(), r.Meta, Old),
		New:         FormatCell(r.NewValue.String(), r.Meta, New),
		Description: describe.Text(r),
		ChangeType:  r.ChangeType,
	}
	if s.opts.InlineDiff && r.ChangeType == changes.Modified && r.OldValue != r.NewValue {
		row.ValueDiff = describe.ValueDiff(r.OldValue.String(), r.NewValue.String())
	}
	return row
}
