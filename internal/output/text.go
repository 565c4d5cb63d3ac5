package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/view"
)

const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
)

// TextWriter outputs a human-readable terminal preview.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, v *view.View) error {
	ew := &errWriter{w: w}

	ew.printf("Spreadsheet Changes — filter: %s\n", v.Filter)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Changes: %s total", humanize.Comma(int64(v.Summary.Total)))
	if v.Summary.Total > 0 {
		ew.printf(" (%s modified, %s added, %s deleted",
			humanize.Comma(int64(v.Summary.Modified)),
			humanize.Comma(int64(v.Summary.Added)),
			humanize.Comma(int64(v.Summary.Deleted)),
		)
		if n := v.Summary.Unrecognized(); n > 0 {
			ew.printf(", %s other", humanize.Comma(int64(n)))
		}
		ew.printf(")")
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if v.Empty != "" {
		ew.printf("\n%s\n", v.Empty)
		return ew.err
	}

	for _, f := range v.Files {
		if !f.Expanded {
			ew.printf("\n%s %s (%s)\n", markerCollapsed, f.Name, count(f.Count, "change"))
			continue
		}
		ew.printf("\n%s %s (%s)\n", markerExpanded, f.Name, count(f.Count, "change"))

		for _, sv := range f.Sheets {
			if !sv.Expanded {
				ew.printf("  %s %s (%s)\n", markerCollapsed, sv.Name, count(sv.Total, "row"))
				continue
			}
			ew.printf("  %s %s (%s)\n", markerExpanded, sv.Name, count(sv.Total, "row"))
			writeSheetTable(ew, sv)
			if sv.HasMore {
				ew.printf("    … %s more (--show-more %q)\n", count(sv.Remaining, "row"), sv.Key().String())
			}
		}
	}

	return ew.err
}

func writeSheetTable(ew *errWriter, sv view.SheetView) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Row", "Col", "Old Value", "New Value", "Changes", "Type"})
	for _, r := range sv.Rows {
		changed := r.Description
		if r.ValueDiff != "" {
			changed = r.Description + "\n" + r.ValueDiff
		}
		tw.AppendRow(table.Row{r.Row, r.Col, styleCell(r.Old), styleCell(r.New), changed, typeBadge(r.ChangeType)})
	}
	for _, line := range strings.Split(tw.Render(), "\n") {
		ew.printf("    %s\n", line)
	}
}

// styleCell applies the cell's resolved style. Default black text and a
// transparent background are left to the terminal.
func styleCell(c view.Cell) string {
	if c.Empty || c.Style == nil {
		return c.Text
	}
	st := lipgloss.NewStyle().Bold(c.Style.Bold).Strikethrough(c.Style.Strike)
	if c.Style.FontColor != view.DefaultFontColor {
		st = st.Foreground(lipgloss.Color(c.Style.FontColor))
	}
	if c.Style.Background != view.DefaultBackground {
		st = st.Background(lipgloss.Color(c.Style.Background))
	}
	return st.Render(c.Text)
}

func typeBadge(t changes.ChangeType) string {
	switch t {
	case changes.Added:
		return color.GreenString(string(t))
	case changes.Deleted:
		return color.RedString(string(t))
	case changes.Modified:
		return color.YellowString(string(t))
	default:
		return color.HiBlackString(string(t))
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
