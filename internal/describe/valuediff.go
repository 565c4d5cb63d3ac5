package describe

import (
	"html"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ValueDiff renders a character-level diff of two cell values, marking
// removed text as [-text-] and inserted text as {+text+}.
func ValueDiff(oldValue, newValue string) string {
	var sb strings.Builder
	for _, d := range diffValues(oldValue, newValue) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// ValueDiffHTML is ValueDiff with <del>/<ins> markup and escaped text.
func ValueDiffHTML(oldValue, newValue string) string {
	var sb strings.Builder
	for _, d := range diffValues(oldValue, newValue) {
		text := html.EscapeString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("<del>" + text + "</del>")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("<ins>" + text + "</ins>")
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

func diffValues(oldValue, newValue string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldValue, newValue, false)
	return dmp.DiffCleanupSemantic(diffs)
}
