package changes

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedRecords() []Record {
	return []Record{
		{FileName: "a.xlsx", Sheet: "S1", Row: "1", ChangeType: Modified},
		{FileName: "a.xlsx", Sheet: "S1", Row: "2", ChangeType: Added},
		{FileName: "b.xlsx", Sheet: "S2", Row: "3", ChangeType: Deleted},
		{FileName: "b.xlsx", Sheet: "S2", Row: "4", ChangeType: "RENAMED"},
		{FileName: "c.xlsx", Sheet: "S3", Row: "5", ChangeType: Added},
		{FileName: "c.xlsx", Sheet: "S3", Row: "6", ChangeType: "added"},
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"All", FilterAll},
		{"all", FilterAll},
		{"", FilterAll},
		{"Modified", FilterModified},
		{"MODIFIED", FilterModified},
		{" added ", FilterAdded},
		{"deleted", FilterDeleted},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFilter("renamed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFilter))
}

func TestFilter_Label(t *testing.T) {
	assert.Equal(t, "All", Filter("").Label())
	assert.Equal(t, "All", Filter("ALL").Label())
	assert.Equal(t, "Modified", Filter("MODIFIED").Label())
	assert.Equal(t, "Added", FilterAdded.Label())
}

func TestApply_All(t *testing.T) {
	recs := mixedRecords()
	assert.Equal(t, recs, Apply(recs, FilterAll))
	assert.Equal(t, recs, Apply(recs, ""))
}

func TestApply_ByType(t *testing.T) {
	recs := mixedRecords()

	for _, f := range []Filter{FilterModified, FilterAdded, FilterDeleted} {
		got := Apply(recs, f)
		require.NotEmpty(t, got, f)
		for _, r := range got {
			assert.Equal(t, ChangeType(strings.ToUpper(string(f))), r.ChangeType)
		}
	}

	added := Apply(recs, FilterAdded)
	require.Len(t, added, 2, "lowercase change types are not ADDED")
	assert.Equal(t, Scalar("2"), added[0].Row)
	assert.Equal(t, Scalar("5"), added[1].Row)
}

func TestApply_LowercaseSelector(t *testing.T) {
	got := Apply(mixedRecords(), Filter("deleted"))
	require.Len(t, got, 1)
	assert.Equal(t, Deleted, got[0].ChangeType)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	recs := mixedRecords()
	before := append([]Record(nil), recs...)
	Apply(recs, FilterDeleted)
	assert.Equal(t, before, recs)
}
