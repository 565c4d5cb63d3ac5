package output

import (
	"io"
	"os"

	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/view"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "markdown", "json"}

// Writer writes a view in a specific format.
type Writer interface {
	Write(w io.Writer, v *view.View) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, errors.Errorf("unsupported output format: %s", format)
	}
}

// WriteView writes v to the specified output (file path or stdout).
func WriteView(v *view.View, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, v)
}

var plural = pluralize.NewClient()

// count renders n with its noun, e.g. "1 change", "12 rows".
func count(n int, noun string) string {
	return plural.Pluralize(noun, n, true)
}
