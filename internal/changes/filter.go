package changes

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter selects records by change type. The zero value behaves as FilterAll.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterModified Filter = "Modified"
	FilterAdded    Filter = "Added"
	FilterDeleted  Filter = "Deleted"
)

// Filters lists the selectors in display order.
var Filters = []Filter{FilterAll, FilterModified, FilterAdded, FilterDeleted}

// ErrUnknownFilter is returned by ParseFilter for an unrecognized selector.
var ErrUnknownFilter = errors.New("unknown filter")

// ParseFilter parses a selector label case-insensitively. Empty means All.
func ParseFilter(s string) (Filter, error) {
	label := strings.TrimSpace(s)
	if label == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if strings.EqualFold(label, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFilter, "%q (want one of all, modified, added, deleted)", s)
}

// Label returns the title-cased display label.
func (f Filter) Label() string {
	if !f.Active() {
		return string(FilterAll)
	}
	return cases.Title(language.English).String(strings.ToLower(string(f)))
}

// Active reports whether the filter narrows anything.
func (f Filter) Active() bool {
	return f != "" && !strings.EqualFold(string(f), string(FilterAll))
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r Record) bool {
	if !f.Active() {
		return true
	}
	return string(r.ChangeType) == strings.ToUpper(string(f))
}

// Apply returns the records that pass f. FilterAll returns records unchanged.
func Apply(records []Record, f Filter) []Record {
	if !f.Active() {
		return records
	}
	return lo.Filter(records, func(r Record, _ int) bool {
		return f.Matches(r)
	})
}
