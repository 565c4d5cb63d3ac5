package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [file|-]",
	Short: "Serve an interactive preview over HTTP",
	Long:  "Start the preview API over the changes in a file, stdin, or nothing (changes can be posted to /api/changes later).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}

		var raw any
		if len(args) == 1 {
			raw, err = readInput(cmd, args[0])
			if err != nil {
				return fail(cmd, err)
			}
		}
		s, err := newSession(cfg, logger, raw)
		if err != nil {
			return fail(cmd, err)
		}

		addr := cfg.Serve.Addr
		if flagAddr != "" {
			addr = flagAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.Run(ctx, logger, s, server.Options{Addr: addr}); err != nil {
			return fail(cmd, err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config serve.addr)")
	serveCmd.Flags().StringVar(&flagFilter, "filter", "", "Initial filter (all, modified, added, deleted)")
	serveCmd.Flags().BoolVar(&flagInlineDiff, "inline-diff", false, "Include a character diff for modified values")
}
