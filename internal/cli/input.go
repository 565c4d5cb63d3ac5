package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// readInput reads path, or stdin for "-", and decodes it.
func readInput(cmd *cobra.Command, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return decodeChanges(data)
}

// decodeChanges accepts JSON, and YAML for anything that is not JSON.
func decodeChanges(data []byte) (any, error) {
	if json.Valid(data) {
		return json.RawMessage(data), nil
	}
	return decodeYAML(data)
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(errUsage, "input is neither JSON nor YAML: "+err.Error())
	}
	return v, nil
}
