package output

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/describe"
	"github.com/dshills/sheetdiff/internal/view"
)

// MarkdownWriter outputs a PR-comment-friendly markdown preview.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, v *view.View) error {
	ew := &errWriter{w: w}

	ew.printf("## Spreadsheet Changes\n\n")

	ew.printf("| Change | Count |\n")
	ew.printf("|--------|-------|\n")
	ew.printf("| Modified | %d |\n", v.Summary.Modified)
	ew.printf("| Added | %d |\n", v.Summary.Added)
	ew.printf("| Deleted | %d |\n", v.Summary.Deleted)
	if n := v.Summary.Unrecognized(); n > 0 {
		ew.printf("| Other | %d |\n", n)
	}
	ew.printf("| **Total** | **%d** |\n\n", v.Summary.Total)
	ew.printf("Filter: **%s**\n\n", v.Filter)

	if v.Empty != "" {
		ew.printf("%s. :white_check_mark:\n", v.Empty)
		return ew.err
	}

	for _, f := range v.Files {
		ew.printf("<details%s>\n<summary>:page_facing_up: %s (%s)</summary>\n\n",
			openAttr(f.Expanded), html.EscapeString(f.Name), count(f.Count, "change"))

		// A collapsed file renders its sheets collapsed regardless of their own state.
		for _, sv := range f.Sheets {
			ew.printf("<details%s>\n<summary>%s (%s)</summary>\n\n",
				openAttr(f.Expanded && sv.Expanded), html.EscapeString(sv.Name), count(sv.Total, "row"))
			if len(sv.Rows) > 0 {
				writeMarkdownRows(ew, sv.Rows)
			}
			if sv.HasMore {
				ew.printf("*%s more not shown*\n\n", count(sv.Remaining, "row"))
			}
			ew.printf("</details>\n\n")
		}

		ew.printf("</details>\n\n")
	}

	return ew.err
}

func writeMarkdownRows(ew *errWriter, rows []view.Row) {
	ew.printf("| Row | Col | Old Value | New Value | Changes | Type |\n")
	ew.printf("|-----|-----|-----------|-----------|---------|------|\n")
	for _, r := range rows {
		changed := mdEscape(r.Description)
		if r.ValueDiff != "" {
			diff := describe.ValueDiffHTML(cellValue(r.Old), cellValue(r.New))
			changed += "<br>" + strings.ReplaceAll(diff, "|", `\|`)
		}
		ew.printf("| %s | %s | %s | %s | %s | %s %s |\n",
			mdEscape(r.Row), mdEscape(r.Col),
			mdCell(r.Old), mdCell(r.New),
			changed, mdTypeIcon(r.ChangeType), r.ChangeType)
	}
	ew.println("")
}

func mdCell(c view.Cell) string {
	if c.Empty || c.Style == nil {
		return mdEscape(c.Text)
	}
	return fmt.Sprintf(`<span style="%s">%s</span>`, html.EscapeString(c.Style.CSS()), mdEscape(c.Text))
}

func cellValue(c view.Cell) string {
	if c.Empty {
		return ""
	}
	return c.Text
}

func openAttr(open bool) string {
	if open {
		return " open"
	}
	return ""
}

// mdEscape makes s safe inside an HTML-enabled markdown table cell.
func mdEscape(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

func mdTypeIcon(t changes.ChangeType) string {
	switch t {
	case changes.Added:
		return ":green_circle:"
	case changes.Deleted:
		return ":red_circle:"
	case changes.Modified:
		return ":yellow_circle:"
	default:
		return ":white_circle:"
	}
}
