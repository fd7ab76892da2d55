// ABOUTME: HTML fragment rendering matching the calculator page's display regions.
// ABOUTME: Errors use the alert color; results use the success color.
package report

import (
	"html"
	"io"
	"strings"

	"github.com/harperreed/gains/internal/calc"
)

// Display colors of the result region.
const (
	AlertColor   = "#ff4d4d"
	SuccessColor = "#00ff99"
)

func writeHTML(w io.Writer, s Summary) error {
	var b strings.Builder
	b.WriteString(`<div class="result-display" style="color: ` + SuccessColor + `">`)
	for _, f := range s.Figures {
		b.WriteString("<b>" + html.EscapeString(f.Label) + ":</b> <b>" + html.EscapeString(f.Text) + "</b><br>")
	}
	b.WriteString("<br>")
	lines := make([]string, len(s.Inputs))
	for i, e := range s.Inputs {
		lines[i] = "<b>" + html.EscapeString(e.Label) + ":</b> " + html.EscapeString(e.Value)
	}
	b.WriteString(strings.Join(lines, "<br>"))
	b.WriteString("</div>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHTMLErrors(w io.Writer, errs calc.ValidationErrors) error {
	msgs := errs.Messages()
	for i, m := range msgs {
		msgs[i] = html.EscapeString(WarningMarker + m)
	}
	out := `<div class="result-display" style="color: ` + AlertColor + `">` + strings.Join(msgs, "<br>") + "</div>\n"
	_, err := io.WriteString(w, out)
	return err
}
