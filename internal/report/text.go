// ABOUTME: Terminal and Markdown rendering.
// ABOUTME: Results print green, errors red with a warning marker per line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gains/internal/calc"
)

// WarningMarker prefixes each error line in human-readable formats.
const WarningMarker = "⚠️ "

func writeText(w io.Writer, s Summary) error {
	success := color.New(color.FgGreen, color.Bold)
	plain := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	var b strings.Builder
	for _, f := range s.Figures {
		b.WriteString(success.Sprintf("%s: %s", f.Label, f.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, e := range s.Inputs {
		b.WriteString(plain.Sprintf("%s: %s", e.Label, e.Value))
		b.WriteString("\n")
	}
	b.WriteString(faint.Sprint(s.ID[:8]))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextErrors(w io.Writer, errs calc.ValidationErrors) error {
	alert := color.New(color.FgRed)
	for _, m := range errs.Messages() {
		if _, err := alert.Fprintln(w, WarningMarker+m); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", markdownTitle(s))
	b.WriteString("| Result | Value |\n|--------|-------|\n")
	for _, f := range s.Figures {
		fmt.Fprintf(&b, "| %s | **%s** |\n", escapeCell(f.Label), f.Text)
	}
	b.WriteString("\n| Input | Value |\n|-------|-------|\n")
	for _, e := range s.Inputs {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(e.Label), escapeCell(e.Value))
	}
	fmt.Fprintf(&b, "\n_Calculation %s at %s_\n", s.ID[:8], s.CreatedAt.Format("2006-01-02 15:04"))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownErrors(w io.Writer, errs calc.ValidationErrors) error {
	var b strings.Builder
	b.WriteString("## Invalid input\n\n")
	for _, m := range errs.Messages() {
		fmt.Fprintf(&b, "- %s%s\n", WarningMarker, m)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func markdownTitle(s Summary) string {
	if len(s.Figures) > 0 && s.Figures[0].Name == "body_fat" {
		return "Body Fat Estimate"
	}
	return "Muscle Gain Estimate"
}

// Pipes would otherwise split the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
