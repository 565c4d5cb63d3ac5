package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sheetdiff configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return fail(cmd, err)
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
			return nil
		}

		if err := config.Save(path, config.Default()); err != nil {
			return fail(cmd, errors.Wrap(err, "writing config"))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. Keys: " + strings.Join(config.Keys(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return fail(cmd, err)
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			return fail(cmd, err)
		}

		if err := config.SetField(&cfg, args[0], args[1]); err != nil {
			return fail(cmd, errors.Wrap(errUsage, err.Error()))
		}
		if err := config.Validate(cfg); err != nil {
			return fail(cmd, errors.Wrap(errUsage, err.Error()))
		}

		if err := config.Save(path, cfg); err != nil {
			return fail(cmd, errors.Wrap(err, "saving config"))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fail(cmd, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		if cfg.Token != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(token set via SHEETDIFF_TOKEN)")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
