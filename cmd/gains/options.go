// ABOUTME: CLI command listing accepted options and the factor tables.
// ABOUTME: Text output is a table; json and yaml dump the full catalog.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gains/internal/calc"
	"github.com/harperreed/gains/internal/models"
	"github.com/harperreed/gains/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var optionsCmd = &cobra.Command{
	Use:     "options",
	Aliases: []string{"opts", "ls"},
	Short:   "List accepted options and factor tables",
	Long: `List every accepted workout, diet and genetics option with its short key and
multiplier, followed by the training-age and age factor tables.

The short key or the full label can be passed to 'gains gain'. Full labels must
match exactly.

EXAMPLES:

  gains options
  gains options --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := calc.Options()
		out := cmd.OutOrStdout()

		switch renderer.Format {
		case report.FormatJSON:
			data, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal options: %w", err)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		case report.FormatYAML:
			data, err := yaml.Marshal(catalog)
			if err != nil {
				return fmt.Errorf("failed to marshal options: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		writeOptionGroup(out, "Workout Quality", catalog.WorkoutQuality)
		writeOptionGroup(out, "Diet Quality", catalog.DietQuality)
		writeOptionGroup(out, "Genetics Type", catalog.GeneticsType)
		writeBrackets(out, "Time Before Training (months)", catalog.TrainingAge)
		writeBrackets(out, "Age (years)", catalog.Age)
		return nil
	},
}

func writeOptionGroup(w io.Writer, title string, opts []models.Option) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintln(w, title)
	for _, o := range opts {
		fmt.Fprintf(w, "  %s %s %s\n",
			padRight(o.Key, 8),
			faint.Sprintf("×%.2f", o.Multiplier),
			truncate(o.Label, 72))
	}
	fmt.Fprintln(w)
}

func writeBrackets(w io.Writer, title string, brackets []calc.Bracket) {
	bold := color.New(color.Bold)

	bold.Fprintln(w, title)
	for _, b := range brackets {
		fmt.Fprintf(w, "  %s %g\n", padRight(b.Range, 8), b.Factor)
	}
	fmt.Fprintln(w)
}

// Widths count runes so ranges like "0–6" line up.
func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
