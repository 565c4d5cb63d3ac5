package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/view"
)

// JSONWriter outputs the full view as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, v *view.View) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	_, err = w.Write(data)
	if err != nil {
		return errors.Wrap(err, "writing JSON")
	}
	_, err = fmt.Fprintln(w)
	return err
}
