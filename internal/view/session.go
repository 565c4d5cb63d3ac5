package view

import (
	"log/slog"

	"github.com/dshills/sheetdiff/internal/changes"
)

// Options tune how a Session renders rows.
type Options struct {
	// InlineDiff adds a character-level value diff to modified rows.
	InlineDiff bool
}

// Session is the presentation state of one change collection.
type Session struct {
	logger *slog.Logger
	opts   Options

	records    []changes.Record
	summary    changes.Summary
	filter     changes.Filter
	expansion  *Expansion
	pagination *Pagination

	// filtered hierarchies by filter, dropped on Load
	hierarchies map[changes.Filter]changes.Hierarchy
}

// NewSession returns an empty session with the All filter.
func NewSession(logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger: logger,
		opts:   opts,
		filter: changes.FilterAll,
	}
	s.reset(nil)
	return s
}

// Load replaces the collection with raw, normalizing it, and reinitializes
// expansion and pagination. The active filter is kept.
func (s *Session) Load(raw any) {
	s.reset(changes.Normalize(s.logger, raw))
	s.logger.Debug("loaded change collection",
		"records", len(s.records),
		"files", len(changes.Build(s.records)),
		"expandedFiles", s.expansion.ExpandedFiles(),
		"expandedSheets", s.expansion.ExpandedSheets())
}

func (s *Session) reset(records []changes.Record) {
	if records == nil {
		records = []changes.Record{}
	}
	s.records = records
	s.summary = changes.Summarize(records)
	s.expansion = NewExpansion(records)
	s.pagination = NewPagination(records)
	s.hierarchies = make(map[changes.Filter]changes.Hierarchy)
}

// Records returns the normalized, unfiltered records.
func (s *Session) Records() []changes.Record {
	return s.records
}

// Summary counts the whole collection regardless of the filter.
func (s *Session) Summary() changes.Summary {
	return s.summary
}

// Filter returns the active filter.
func (s *Session) Filter() changes.Filter {
	return s.filter
}

// SetFilter changes the active filter. Expansion and pagination are kept.
func (s *Session) SetFilter(f changes.Filter) {
	if f == "" {
		f = changes.FilterAll
	}
	s.filter = f
}

// Hierarchy returns the grouping of the records that pass the active filter.
func (s *Session) Hierarchy() changes.Hierarchy {
	if h, ok := s.hierarchies[s.filter]; ok {
		return h
	}
	h := changes.Build(changes.Apply(s.records, s.filter))
	s.hierarchies[s.filter] = h
	return h
}

// ToggleFile flips a file's expansion and returns its new state.
func (s *Session) ToggleFile(file string) bool {
	return s.expansion.ToggleFile(file)
}

// ToggleSheet flips a sheet's expansion and returns its new state.
func (s *Session) ToggleSheet(key changes.SheetKey) bool {
	return s.expansion.ToggleSheet(key)
}

// ShowMore reveals another page of a sheet and returns the visible count.
func (s *Session) ShowMore(key changes.SheetKey) int {
	return s.pagination.ShowMore(key)
}
