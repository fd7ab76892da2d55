// ABOUTME: Root Cobra command for gains CLI.
// ABOUTME: Loads config and builds the logger and renderer in PersistentPreRunE.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gains/internal/config"
	"github.com/harperreed/gains/internal/logging"
	"github.com/harperreed/gains/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg      *config.Config
	logger   *zap.Logger
	renderer *report.Renderer

	flagFormat   string
	flagNoColor  bool
	flagLogLevel string
)

// errInvalidInput marks a run whose validation errors were already printed.
var errInvalidInput = errors.New("invalid input")

var rootCmd = &cobra.Command{
	Use:   "gains",
	Short: "Muscle gain and body fat calculator",
	Long: `Gains estimates how much muscle you can expect to build and your body-fat
percentage from a few measurements.

CALCULATORS:

  gain       Estimated lean muscle gain over a period, plus projected final
             body weight when current weight and body fat are given
  bodyfat    Body-fat percentage from height, neck and waist (U.S. Navy, men)

QUICK START:

  $ gains gain --age 25 --training-time 3 --result-time 6 \
      --workout high --diet good --genetics easy
  $ gains bodyfat --height 180 --neck 40 --waist 90
  $ gains options                     # Accepted labels and factor tables

OUTPUT:

  Use --format to choose text (default), json, yaml, markdown, or html.
  The default can be stored with 'gains config set format json'.

MCP INTEGRATION:

  Run 'gains mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "gains": { "command": "gains", "args": ["mcp"] }
    }
  }`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags parsed fine; from here on errors are not usage problems.
		cmd.SilenceUsage = true

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Bad stored values fall back to defaults so 'config set' can fix them.
		problems := cfg.Repair()

		level := cfg.GetLogLevel()
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		logger, err = logging.New(level, false)
		if err != nil {
			return err
		}

		for _, p := range problems {
			logger.Warn("ignoring invalid config value",
				zap.String("path", config.GetConfigPath()),
				zap.Error(p))
		}

		format := cfg.GetFormat()
		if flagFormat != "" {
			format = flagFormat
		}
		renderer, err = report.NewRenderer(format)
		if err != nil {
			return err
		}

		if flagNoColor || cfg.NoColor {
			color.NoColor = true
		}

		logger.Debug("configuration loaded",
			zap.String("path", config.GetConfigPath()),
			zap.String("format", format),
			zap.String("log_level", level))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			// Sync on stderr reports EINVAL on some platforms; nothing to recover.
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: text, json, yaml, markdown, html")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
}
