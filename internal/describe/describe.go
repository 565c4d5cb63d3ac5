package describe

import (
	"strings"

	"github.com/dshills/sheetdiff/internal/changes"
)

const (
	msgAdded    = "New cell added"
	msgDeleted  = "Cell deleted"
	msgValue    = "Value updated"
	msgNoChange = "No visible change"
)

// Describe lists the visible differences of one record.
//
// Added and deleted cells get a single fixed phrase. Anything else is
// compared field by field; every differing field contributes one phrase.
// The result is never empty.
func Describe(r changes.Record) []string {
	switch r.ChangeType {
	case changes.Added:
		return []string{msgAdded}
	case changes.Deleted:
		return []string{msgDeleted}
	}

	var out []string
	if r.OldValue != r.NewValue || r.OldKind != r.NewKind {
		out = append(out, msgValue)
	}
	if m := r.Meta; m != nil {
		if differ(m.OldFontColor, m.NewFontColor) {
			out = append(out, "Font color: "+colorOr(m.NewFontColor, "Default"))
		}
		if differ(m.OldBgColor, m.NewBgColor) {
			out = append(out, "Background: "+colorOr(m.NewBgColor, "None"))
		}
		if differ(m.OldBold, m.NewBold) {
			if isSet(m.NewBold) {
				out = append(out, "Made Bold")
			} else {
				out = append(out, "Un-bolded")
			}
		}
		if differ(m.OldStrike, m.NewStrike) {
			if isSet(m.NewStrike) {
				out = append(out, "Strikethrough added")
			} else {
				out = append(out, "Strikethrough removed")
			}
		}
	}

	if len(out) == 0 {
		return []string{msgNoChange}
	}
	return out
}

// Text joins Describe's phrases for single-line display.
func Text(r changes.Record) string {
	return strings.Join(Describe(r), ", ")
}

// differ compares two optional values; absent and present are different.
func differ[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return (a == nil) != (b == nil)
	}
	return *a != *b
}

func isSet(b *bool) bool {
	return b != nil && *b
}

func colorOr(hex *string, fallback string) string {
	if hex == nil {
		return fallback
	}
	if name := ColorName(*hex); name != "" {
		return name
	}
	return fallback
}
