package changes

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// decodeRecord builds a Record from one generic JSON object. Fields of an
// unexpected type are coerced to text, or left zero when no text form fits;
// their names are returned.
func decodeRecord(m map[string]any) (Record, []string) {
	d := &fieldDecoder{m: m}
	r := Record{
		FileName:   d.text("fileName"),
		Sheet:      d.text("sheet"),
		ChangeType: ChangeType(d.text("changeType")),
		Meta:       d.meta("meta"),
	}
	r.Row, _ = d.scalar("row")
	r.Col, _ = d.scalar("col")
	r.OldValue, r.OldKind = d.scalar("oldValue")
	r.NewValue, r.NewKind = d.scalar("newValue")
	return r, d.bad
}

type fieldDecoder struct {
	m      map[string]any
	prefix string
	bad    []string
}

func (d *fieldDecoder) fail(key string) {
	d.bad = append(d.bad, d.prefix+key)
}

// text reads a string field. Numbers and booleans are formatted.
func (d *fieldDecoder) text(key string) string {
	switch v := d.m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		d.fail(key)
		return strconv.FormatBool(v)
	default:
		d.fail(key)
		if s, ok := numberText(v); ok {
			return s
		}
		return ""
	}
}

// scalar reads a cell coordinate or value, remembering its JSON type.
// Objects and arrays are kept as compact JSON text.
func (d *fieldDecoder) scalar(key string) (Scalar, ValueKind) {
	switch v := d.m[key].(type) {
	case nil:
		return "", KindText
	case string:
		return Scalar(v), KindText
	case bool:
		return Scalar(strconv.FormatBool(v)), KindBool
	default:
		if s, ok := numberText(v); ok {
			return Scalar(s), KindNumber
		}
		d.fail(key)
		b, err := json.Marshal(v)
		if err != nil {
			return Scalar(fmt.Sprint(v)), KindText
		}
		return Scalar(b), KindText
	}
}

func (d *fieldDecoder) optText(key string) *string {
	switch v := d.m[key].(type) {
	case nil:
		return nil
	case string:
		return &v
	default:
		d.fail(key)
		return nil
	}
}

func (d *fieldDecoder) optBool(key string) *bool {
	switch v := d.m[key].(type) {
	case nil:
		return nil
	case bool:
		return &v
	default:
		d.fail(key)
		return nil
	}
}

func (d *fieldDecoder) optNumber(key string) *float64 {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := numberText(v)
	if !ok {
		d.fail(key)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.fail(key)
		return nil
	}
	return &f
}

func (d *fieldDecoder) meta(key string) *Meta {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil
	}
	mm, ok := v.(map[string]any)
	if !ok {
		d.fail(key)
		return nil
	}

	sub := &fieldDecoder{m: mm, prefix: key + "."}
	meta := &Meta{
		OldFontColor: sub.optText("oldFontColor"),
		NewFontColor: sub.optText("newFontColor"),
		OldBgColor:   sub.optText("oldBgColor"),
		NewBgColor:   sub.optText("newBgColor"),
		OldBold:      sub.optBool("oldBold"),
		NewBold:      sub.optBool("newBold"),
		OldStrike:    sub.optBool("oldStrike"),
		NewStrike:    sub.optBool("newStrike"),
		OldFontSize:  sub.optNumber("oldFontSize"),
		NewFontSize:  sub.optNumber("newFontSize"),
		OldAlign:     sub.optText("oldAlign"),
		NewAlign:     sub.optText("newAlign"),
		OldBorders:   sub.optText("oldBorders"),
		NewBorders:   sub.optText("newBorders"),
	}
	d.bad = append(d.bad, sub.bad...)
	return meta
}

// numberText formats the numeric types produced by the JSON and YAML decoders.
func numberText(v any) (string, bool) {
	switch x := v.(type) {
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	default:
		return "", false
	}
}
