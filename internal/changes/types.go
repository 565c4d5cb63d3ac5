package changes

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinels used when a record does not say where it came from.
const (
	UnknownFile  = "Unknown File"
	UnknownSheet = "Unknown Sheet"
)

// ChangeType classifies a change record.
type ChangeType string

const (
	Added    ChangeType = "ADDED"
	Modified ChangeType = "MODIFIED"
	Deleted  ChangeType = "DELETED"
)

// Known reports whether t is one of the three recognized change types.
func (t ChangeType) Known() bool {
	switch t {
	case Added, Modified, Deleted:
		return true
	default:
		return false
	}
}

// Scalar is a displayed cell coordinate or value. The backend sends these as
// strings or numbers depending on the source sheet, so any JSON scalar is
// accepted and kept in its textual form.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return errors.Wrap(err, "decoding scalar")
	}

	switch x := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(x)
	case json.Number:
		*s = Scalar(x.String())
	case bool:
		*s = Scalar(strconv.FormatBool(x))
	default:
		return errors.Errorf("unsupported scalar %s", strings.TrimSpace(string(data)))
	}
	return nil
}

// String returns the scalar's text.
func (s Scalar) String() string {
	return string(s)
}

// ValueKind is the JSON type a cell value arrived as. The text form alone
// cannot tell 5 from "5".
type ValueKind uint8

const (
	KindText ValueKind = iota
	KindNumber
	KindBool
)

// Meta is the style snapshot of a cell on both sides of a change. Every field
// is optional; absent and present-but-zero are different states.
type Meta struct {
	OldFontColor *string `json:"oldFontColor,omitempty"`
	NewFontColor *string `json:"newFontColor,omitempty"`
	OldBgColor   *string `json:"oldBgColor,omitempty"`
	NewBgColor   *string `json:"newBgColor,omitempty"`
	OldBold      *bool   `json:"oldBold,omitempty"`
	NewBold      *bool   `json:"newBold,omitempty"`
	OldStrike    *bool   `json:"oldStrike,omitempty"`
	NewStrike    *bool   `json:"newStrike,omitempty"`

	OldFontSize *float64 `json:"oldFontSize,omitempty"`
	NewFontSize *float64 `json:"newFontSize,omitempty"`
	OldAlign    *string  `json:"oldAlign,omitempty"`
	NewAlign    *string  `json:"newAlign,omitempty"`
	OldBorders  *string  `json:"oldBorders,omitempty"`
	NewBorders  *string  `json:"newBorders,omitempty"`
}

// Record is one added, modified or deleted cell.
type Record struct {
	FileName   string     `json:"fileName,omitempty"`
	Sheet      string     `json:"sheet,omitempty"`
	Row        Scalar     `json:"row"`
	Col        Scalar     `json:"col"`
	OldValue   Scalar     `json:"oldValue,omitempty"`
	NewValue   Scalar     `json:"newValue,omitempty"`
	ChangeType ChangeType `json:"changeType"`
	Meta       *Meta      `json:"meta,omitempty"`

	// OldKind and NewKind are set by Normalize; the zero value is KindText.
	OldKind ValueKind `json:"-"`
	NewKind ValueKind `json:"-"`
}

// File returns the record's file name, or UnknownFile.
func (r Record) File() string {
	if r.FileName == "" {
		return UnknownFile
	}
	return r.FileName
}

// SheetName returns the record's sheet name, or UnknownSheet.
func (r Record) SheetName() string {
	if r.Sheet == "" {
		return UnknownSheet
	}
	return r.Sheet
}

// Key returns the composite file/sheet key the record is grouped under.
func (r Record) Key() SheetKey {
	return SheetKey{File: r.File(), Sheet: r.SheetName()}
}

// Collection is the wrapped response shape returned by uploads.
type Collection struct {
	ID      string   `json:"id,omitempty"`
	Changes []Record `json:"changes"`
}

// SheetKey addresses one sheet of one file.
type SheetKey struct {
	File  string `json:"file"`
	Sheet string `json:"sheet"`
}

const keySeparator = "|"

// String renders the key as "file|sheet".
func (k SheetKey) String() string {
	return k.File + keySeparator + k.Sheet
}

// ErrInvalidSheetKey is returned by ParseSheetKey for malformed input.
var ErrInvalidSheetKey = errors.New("invalid sheet key")

// ParseSheetKey parses the "file|sheet" form, splitting on the first separator.
func ParseSheetKey(s string) (SheetKey, error) {
	file, sheet, ok := strings.Cut(s, keySeparator)
	if !ok || file == "" || sheet == "" {
		return SheetKey{}, errors.Wrapf(ErrInvalidSheetKey, "%q (want file|sheet)", s)
	}
	return SheetKey{File: file, Sheet: sheet}, nil
}
