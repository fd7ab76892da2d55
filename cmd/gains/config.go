// ABOUTME: CLI commands for viewing and changing stored defaults.
// ABOUTME: Writes changes back to the JSON config file.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gains/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stored defaults",
	Long: `Show or change defaults stored in the config file.

KEYS:

  format      text, json, yaml, markdown, or html
  no_color    true or false
  log_level   debug, info, warn, or error

The file lives at $XDG_CONFIG_HOME/gains/config.json (usually
~/.config/gains/config.json). Set GAINS_CONFIG to use another path.

EXAMPLES:

  gains config show
  gains config set format json`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)

		fmt.Fprintln(out, faint.Sprint(config.GetConfigPath()))
		fmt.Fprintf(out, "%s %s\n", padRight("format", 10), cfg.GetFormat())
		fmt.Fprintf(out, "%s %t\n", padRight("no_color", 10), cfg.NoColor)
		fmt.Fprintf(out, "%s %s\n", padRight("log_level", 10), cfg.GetLogLevel())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Set %s = %s", args[0], args[1]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
