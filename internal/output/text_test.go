package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/view"
)

func TestTextWriter_NoChanges(t *testing.T) {
	v := testView(t, view.Options{}, nil)

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "filter: All")
	assert.Contains(t, out, "Changes: 0 total")
	assert.Contains(t, out, view.MsgNoChanges)
}

func TestTextWriter_Paginated(t *testing.T) {
	v := testView(t, view.Options{}, testRecords("budget.xlsx", "Q1", 12))

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "Changes: 12 total (12 modified, 0 added, 0 deleted)")
	assert.Contains(t, out, "▾ budget.xlsx (12 changes)")
	assert.Contains(t, out, "▾ Q1 (12 rows)")
	assert.Contains(t, out, "Old Value")
	assert.Contains(t, out, "Value updated")
	assert.Contains(t, out, "… 2 rows more")
	assert.Contains(t, out, `"budget.xlsx|Q1"`)
}

func TestTextWriter_UnrecognizedTypes(t *testing.T) {
	recs := testRecords("budget.xlsx", "Q1", 2)
	recs[1].ChangeType = "RENAMED"
	v := testView(t, view.Options{}, recs)

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))
	assert.Contains(t, buf.String(), "Changes: 2 total (1 modified, 0 added, 0 deleted, 1 other)")

	buf.Reset()
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, v))
	assert.Contains(t, buf.String(), "| Other | 1 |")
}

func TestTextWriter_Collapsed(t *testing.T) {
	var recs []changes.Record
	for _, f := range []string{"a", "b", "c", "d", "e"} {
		recs = append(recs, testRecords(f+".xlsx", "S", 1)...)
	}
	v := testView(t, view.Options{}, recs)

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "▾ a.xlsx (1 change)")
	assert.Contains(t, out, "▸ b.xlsx (1 change)")
	assert.Contains(t, out, "▸ e.xlsx (1 change)")
}

func TestTextWriter_InlineDiff(t *testing.T) {
	recs := []changes.Record{{
		FileName: "a.xlsx", Sheet: "S", Row: "1", Col: "A",
		OldValue: "10", NewValue: "12", ChangeType: changes.Modified,
		Meta: &changes.Meta{NewBold: boolPtr(true)},
	}}
	v := testView(t, view.Options{InlineDiff: true}, recs)

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "Value updated, Made Bold")
	assert.Contains(t, out, "1[-0-]{+2+}")
	assert.Contains(t, out, "MODIFIED")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestTextWriter_WriteError(t *testing.T) {
	v := testView(t, view.Options{}, testRecords("a.xlsx", "S", 1))
	assert.ErrorIs(t, (&TextWriter{}).Write(failWriter{}, v), assert.AnError)
}
