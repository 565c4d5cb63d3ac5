package cli

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/config"
	"github.com/dshills/sheetdiff/internal/output"
	"github.com/dshills/sheetdiff/internal/view"
)

// Shared view flags
var (
	flagFilter      string
	flagFormat      string
	flagOut         string
	flagInlineDiff  bool
	flagToggleFile  []string
	flagToggleSheet []string
	flagShowMore    []string
	flagNoCache     bool
)

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFilter, "filter", "", "Show only one change type (all, modified, added, deleted)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, markdown, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagInlineDiff, "inline-diff", false, "Show a character diff for modified values")
	cmd.Flags().StringArrayVar(&flagToggleFile, "toggle-file", nil, "Flip the expansion of a file (repeatable)")
	cmd.Flags().StringArrayVar(&flagToggleSheet, "toggle-sheet", nil, "Flip the expansion of a sheet given as file|sheet (repeatable)")
	cmd.Flags().StringArrayVar(&flagShowMore, "show-more", nil, "Reveal another page of a sheet given as file|sheet (repeatable)")
}

func addCacheFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the change cache")
}

func buildOverrides() map[string]any {
	m := make(map[string]any)
	if flagFilter != "" {
		m["filter"] = flagFilter
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagInlineDiff {
		m["inlineDiff"] = true
	}
	if flagNoCache {
		m["cache.enabled"] = false
	}
	if flagLogLevel != "" {
		m["log.level"] = flagLogLevel
	}
	return m
}

var previewCmd = &cobra.Command{
	Use:   "preview <file|->",
	Short: "Preview a change collection from a JSON or YAML file",
	Long:  "Render the changes in a file (or stdin when the argument is -) as a file/sheet hierarchy.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return fail(cmd, err)
		}
		return renderChanges(cmd, cfg, logger, raw)
	},
}

func init() {
	addViewFlags(previewCmd)
}

// newSession builds a session over raw with the view flags applied.
func newSession(cfg config.Config, logger *slog.Logger, raw any) (*view.Session, error) {
	f, err := changes.ParseFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	s := view.NewSession(logger, view.Options{InlineDiff: cfg.InlineDiff})
	s.Load(raw)
	s.SetFilter(f)

	for _, file := range flagToggleFile {
		s.ToggleFile(file)
	}
	for _, k := range flagToggleSheet {
		key, err := changes.ParseSheetKey(k)
		if err != nil {
			return nil, err
		}
		s.ToggleSheet(key)
	}
	for _, k := range flagShowMore {
		key, err := changes.ParseSheetKey(k)
		if err != nil {
			return nil, err
		}
		s.ShowMore(key)
	}
	return s, nil
}

func renderChanges(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, raw any) error {
	s, err := newSession(cfg, logger, raw)
	if err != nil {
		return fail(cmd, err)
	}
	if err := writeView(cmd, s.View(), cfg.Format); err != nil {
		return fail(cmd, err)
	}
	return nil
}

func writeView(cmd *cobra.Command, v *view.View, format string) error {
	if flagOut != "" {
		return output.WriteView(v, format, flagOut)
	}
	w, err := output.GetWriter(format)
	if err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	return w.Write(cmd.OutOrStdout(), v)
}
