package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sheetdiff/internal/changes"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		rec  changes.Record
		want []string
	}{
		{
			name: "bold only",
			rec: changes.Record{
				ChangeType: changes.Modified, OldValue: "5", NewValue: "5",
				Meta: &changes.Meta{OldBold: boolPtr(false), NewBold: boolPtr(true)},
			},
			want: []string{"Made Bold"},
		},
		{
			name: "number replaced by equal text",
			rec: changes.Record{
				ChangeType: changes.Modified, OldValue: "5", NewValue: "5",
				OldKind: changes.KindNumber, NewKind: changes.KindText,
			},
			want: []string{"Value updated"},
		},
		{
			name: "nothing differs, no meta",
			rec:  changes.Record{ChangeType: changes.Modified, OldValue: "x", NewValue: "x"},
			want: []string{"No visible change"},
		},
		{
			name: "added ignores meta",
			rec: changes.Record{
				ChangeType: changes.Added, OldValue: "a", NewValue: "b",
				Meta: &changes.Meta{NewBold: boolPtr(true), NewFontColor: strPtr("#FF0000")},
			},
			want: []string{"New cell added"},
		},
		{
			name: "deleted ignores meta",
			rec: changes.Record{
				ChangeType: changes.Deleted, OldValue: "a",
				Meta: &changes.Meta{OldStrike: boolPtr(true)},
			},
			want: []string{"Cell deleted"},
		},
		{
			name: "everything in fixed order",
			rec: changes.Record{
				ChangeType: changes.Modified, OldValue: "1", NewValue: "2",
				Meta: &changes.Meta{
					OldFontColor: strPtr("#000000"), NewFontColor: strPtr("#ff0000"),
					OldBgColor: strPtr("#FFFFFF"), NewBgColor: strPtr("#123456"),
					OldBold: boolPtr(true), NewBold: boolPtr(false),
					OldStrike: boolPtr(false), NewStrike: boolPtr(true),
				},
			},
			want: []string{
				"Value updated",
				"Font color: Red",
				"Background: #123456",
				"Un-bolded",
				"Strikethrough added",
			},
		},
		{
			name: "removed colors fall back",
			rec: changes.Record{
				ChangeType: changes.Modified,
				Meta: &changes.Meta{
					OldFontColor: strPtr("#0000FF"),
					OldBgColor:   strPtr("#FFFF00"), NewBgColor: strPtr(""),
					OldStrike: boolPtr(true),
				},
			},
			want: []string{
				"Font color: Default",
				"Background: None",
				"Strikethrough removed",
			},
		},
		{
			name: "absent versus false differs",
			rec: changes.Record{
				ChangeType: changes.Modified,
				Meta:       &changes.Meta{NewBold: boolPtr(false)},
			},
			want: []string{"Un-bolded"},
		},
		{
			name: "unknown type compared field by field",
			rec:  changes.Record{ChangeType: "RENAMED", OldValue: "a", NewValue: "b"},
			want: []string{"Value updated"},
		},
		{
			name: "empty meta",
			rec:  changes.Record{ChangeType: changes.Modified, Meta: &changes.Meta{}},
			want: []string{"No visible change"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.rec))
		})
	}
}

func TestText(t *testing.T) {
	rec := changes.Record{
		ChangeType: changes.Modified, OldValue: "1", NewValue: "2",
		Meta: &changes.Meta{OldBold: boolPtr(false), NewBold: boolPtr(true)},
	}
	assert.Equal(t, "Value updated, Made Bold", Text(rec))
	assert.Equal(t, "New cell added", Text(changes.Record{ChangeType: changes.Added}))
}

func TestDescribe_NormalizedValueTypes(t *testing.T) {
	recs := changes.Normalize(nil, []byte(`[
		{"changeType":"MODIFIED","oldValue":5,"newValue":"5"},
		{"changeType":"MODIFIED","oldValue":5,"newValue":5}
	]`))

	require.Len(t, recs, 2)
	assert.Equal(t, "Value updated", Text(recs[0]))
	assert.Equal(t, "No visible change", Text(recs[1]))
}
