package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the change cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all cached change payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return fail(cmd, errors.Wrap(err, "opening cache"))
		}
		n, err := c.Clear()
		if err != nil {
			return fail(cmd, errors.Wrap(err, "clearing cache"))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared (%s removed).\n", plural.Pluralize("entry", n, true))
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return fail(cmd, errors.Wrap(err, "opening cache"))
		}
		if !c.Enabled() {
			fmt.Fprintln(cmd.OutOrStdout(), "Cache is disabled.")
			return nil
		}
		stats, err := c.GetStats()
		if err != nil {
			return fail(cmd, errors.Wrap(err, "reading cache stats"))
		}
		if cfg.Format == "json" {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Directory: %s\nEntries:   %d (%d expired)\nSize:      %s\n",
			stats.Dir, stats.Entries, stats.Expired, humanize.Bytes(uint64(stats.TotalBytes)))
		return nil
	},
}

var plural = pluralize.NewClient()

func init() {
	cacheShowCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)
}
