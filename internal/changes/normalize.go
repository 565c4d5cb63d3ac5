package changes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// wrapperFields are the object fields a change sequence may be nested under,
// in lookup order.
var wrapperFields = []string{"changes", "data"}

// Normalize coerces a backend response into a flat slice of records.
//
// It never fails: absent input yields an empty slice, and any shape it does
// not recognize is logged on logger (slog.Default when nil) and also yields an
// empty slice. A record whose fields have unexpected types is kept with those
// fields coerced, and logged. The returned slice is never nil.
func Normalize(logger *slog.Logger, raw any) []Record {
	if logger == nil {
		logger = slog.Default()
	}
	records, err := normalize(logger, raw)
	if err != nil {
		logger.Warn("discarding malformed change collection",
			"type", fmt.Sprintf("%T", raw),
			"error", err.Error())
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}
	return records
}

func normalize(logger *slog.Logger, raw any) ([]Record, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []Record:
		return v, nil
	case Collection:
		return v.Changes, nil
	case *Collection:
		if v == nil {
			return nil, nil
		}
		return v.Changes, nil
	case json.RawMessage:
		return normalizeJSON(logger, v)
	case []byte:
		return normalizeJSON(logger, v)
	case []any:
		return decodeRecords(logger, v)
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return decodeRecords(logger, items)
	case map[string]any:
		for _, field := range wrapperFields {
			inner, ok := v[field]
			if !ok {
				continue
			}
			if !isSequence(inner) {
				return nil, errors.Errorf("field %q is %T, not a sequence", field, inner)
			}
			return normalize(logger, inner)
		}
		return nil, errors.New("object has no change sequence field")
	default:
		return nil, errors.Errorf("unsupported shape %T", raw)
	}
}

func normalizeJSON(logger *slog.Logger, data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "decoding JSON payload")
	}
	return normalize(logger, v)
}

func isSequence(v any) bool {
	switch v.(type) {
	case []any, []map[string]any, []Record:
		return true
	default:
		return false
	}
}

func decodeRecords(logger *slog.Logger, items []any) ([]Record, error) {
	objects := make([]map[string]any, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Errorf("element %d is %T, not an object", i, item)
		}
		objects[i] = m
	}

	records := make([]Record, len(objects))
	for i, m := range objects {
		var bad []string
		records[i], bad = decodeRecord(m)
		if len(bad) > 0 {
			logger.Warn("coerced malformed change record",
				"index", i,
				"fields", strings.Join(bad, ","))
		}
	}
	return records, nil
}
