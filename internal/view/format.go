package view

import (
	"fmt"
	"regexp"

	"github.com/dshills/sheetdiff/internal/changes"
)

// Side selects the old or new half of a change.
type Side int

const (
	Old Side = iota
	New
)

// Style defaults applied when the snapshot does not say otherwise.
const (
	DefaultFontColor  = "#000000"
	DefaultBackground = "transparent"

	// EmptyPlaceholder stands in for an empty cell.
	EmptyPlaceholder = "—"
)

// Style is the resolved look of a cell value.
type Style struct {
	FontColor  string `json:"fontColor"`
	Background string `json:"background"`
	Bold       bool   `json:"bold"`
	Strike     bool   `json:"strike"`
}

// CSS renders the style as an inline CSS declaration list. A color that is
// not a hex value or keyword is replaced by its default.
func (s Style) CSS() string {
	weight, decoration := "normal", "none"
	if s.Bold {
		weight = "bold"
	}
	if s.Strike {
		decoration = "line-through"
	}
	return fmt.Sprintf("color:%s;background-color:%s;font-weight:%s;text-decoration:%s",
		colorOr(&s.FontColor, DefaultFontColor), colorOr(&s.Background, DefaultBackground),
		weight, decoration)
}

// Cell is one formatted value. Empty cells carry the placeholder text and no
// style.
type Cell struct {
	Text  string `json:"text"`
	Empty bool   `json:"empty,omitempty"`
	Style *Style `json:"style,omitempty"`
}

// FormatCell pairs value with the style of the chosen side of meta. A nil
// meta, or absent fields, give the default style.
func FormatCell(value string, meta *changes.Meta, side Side) Cell {
	if value == "" {
		return Cell{Text: EmptyPlaceholder, Empty: true}
	}

	var fontColor, bgColor *string
	var bold, strike *bool
	if meta != nil {
		if side == Old {
			fontColor, bgColor, bold, strike = meta.OldFontColor, meta.OldBgColor, meta.OldBold, meta.OldStrike
		} else {
			fontColor, bgColor, bold, strike = meta.NewFontColor, meta.NewBgColor, meta.NewBold, meta.NewStrike
		}
	}

	return Cell{
		Text: value,
		Style: &Style{
			FontColor:  colorOr(fontColor, DefaultFontColor),
			Background: colorOr(bgColor, DefaultBackground),
			Bold:       bold != nil && *bold,
			Strike:     strike != nil && *strike,
		},
	}
}

// colorToken matches hex colors (#RGB, #RRGGBB, #RRGGBBAA) and CSS color
// keywords.
var colorToken = regexp.MustCompile(`^(#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})|[A-Za-z]+)$`)

// colorOr returns the color in s, or fallback when it is absent or not a
// color.
func colorOr(s *string, fallback string) string {
	if s == nil || !colorToken.MatchString(*s) {
		return fallback
	}
	return *s
}
