package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/sheetdiff/internal/changes"
)

// spread returns two records (two sheets) for each of n files, starting with
// the last file so that the first record is not the alphabetically first.
func spread(n int) []changes.Record {
	var recs []changes.Record
	for i := n - 1; i >= 0; i-- {
		file := fmt.Sprintf("file-%d.xlsx", i)
		recs = append(recs,
			changes.Record{FileName: file, Sheet: "A", ChangeType: changes.Modified},
			changes.Record{FileName: file, Sheet: "B", ChangeType: changes.Added},
		)
	}
	return recs
}

func TestNewExpansion_FewFilesExpandsAll(t *testing.T) {
	e := NewExpansion(spread(4))

	assert.Equal(t, 4, e.ExpandedFiles())
	assert.Equal(t, 8, e.ExpandedSheets())
	for i := 0; i < 4; i++ {
		file := fmt.Sprintf("file-%d.xlsx", i)
		assert.True(t, e.FileExpanded(file), file)
		assert.True(t, e.SheetExpanded(changes.SheetKey{File: file, Sheet: "A"}))
		assert.True(t, e.SheetExpanded(changes.SheetKey{File: file, Sheet: "B"}))
	}
}

func TestNewExpansion_ManyFilesExpandsFirstRecordFile(t *testing.T) {
	e := NewExpansion(spread(5))

	assert.Equal(t, 1, e.ExpandedFiles())
	assert.Equal(t, 2, e.ExpandedSheets())
	assert.True(t, e.FileExpanded("file-4.xlsx"))
	assert.False(t, e.FileExpanded("file-0.xlsx"))
	assert.True(t, e.SheetExpanded(changes.SheetKey{File: "file-4.xlsx", Sheet: "A"}))
	assert.True(t, e.SheetExpanded(changes.SheetKey{File: "file-4.xlsx", Sheet: "B"}))
	assert.False(t, e.SheetExpanded(changes.SheetKey{File: "file-0.xlsx", Sheet: "A"}))
}

func TestNewExpansion_SentinelsAndEmpty(t *testing.T) {
	e := NewExpansion([]changes.Record{{}})
	assert.True(t, e.FileExpanded(changes.UnknownFile))
	assert.True(t, e.SheetExpanded(changes.SheetKey{File: changes.UnknownFile, Sheet: changes.UnknownSheet}))

	empty := NewExpansion(nil)
	assert.Zero(t, empty.ExpandedFiles())
	assert.Zero(t, empty.ExpandedSheets())
}

func TestExpansion_ToggleIsIndependent(t *testing.T) {
	e := NewExpansion(spread(2))
	sheet := changes.SheetKey{File: "file-0.xlsx", Sheet: "A"}

	assert.False(t, e.ToggleFile("file-0.xlsx"))
	assert.False(t, e.FileExpanded("file-0.xlsx"))
	assert.True(t, e.SheetExpanded(sheet), "collapsing a file keeps its sheets")
	assert.True(t, e.FileExpanded("file-1.xlsx"))

	assert.True(t, e.ToggleFile("file-0.xlsx"))
	assert.True(t, e.FileExpanded("file-0.xlsx"))

	assert.False(t, e.ToggleSheet(sheet))
	assert.False(t, e.SheetExpanded(sheet))
	assert.True(t, e.SheetExpanded(changes.SheetKey{File: "file-0.xlsx", Sheet: "B"}))
	assert.True(t, e.ToggleSheet(sheet))

	assert.True(t, e.ToggleFile("never-seen.xlsx"))
	assert.True(t, e.FileExpanded("never-seen.xlsx"))
}
