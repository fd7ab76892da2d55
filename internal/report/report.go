// ABOUTME: Presentation of calculations and validation errors.
// ABOUTME: Supports text, JSON, YAML, Markdown, and HTML fragment output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/harperreed/gains/internal/calc"
	"github.com/harperreed/gains/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat validates a format name. Empty input selects text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (use text, json, yaml, markdown, or html)", s)
}

// Figure is one computed output, rounded for display.
type Figure struct {
	Name  string  `json:"name" yaml:"name"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
	Text  string  `json:"text" yaml:"text"`
}

// Echo is an input shown back alongside the result.
type Echo struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Summary is the display-ready view of a calculation shared by all formats.
type Summary struct {
	ID        string                 `json:"id" yaml:"id"`
	Kind      models.CalculationKind `json:"kind" yaml:"kind"`
	CreatedAt time.Time              `json:"created_at" yaml:"created_at"`
	Figures   []Figure               `json:"figures" yaml:"figures"`
	Inputs    []Echo                 `json:"inputs" yaml:"inputs"`
}

// ErrorReport wraps validation failures for structured formats.
type ErrorReport struct {
	Errors calc.ValidationErrors `json:"errors" yaml:"errors"`
}

func figure(name, label string, v float64, places int, unit string) Figure {
	text := calc.FormatFixed(v, places)
	if unit == "%" {
		text += unit
	} else {
		text += " " + unit
	}
	return Figure{Name: name, Label: label, Value: calc.Round(v, places), Unit: unit, Text: text}
}

// Summarize rounds the results of c and collects the echoed inputs.
func Summarize(c *models.Calculation) Summary {
	s := Summary{
		ID:        c.ID.String(),
		Kind:      c.Kind,
		CreatedAt: c.CreatedAt,
	}

	switch c.Kind {
	case models.KindMuscleGain:
		p, r := c.MuscleGain, c.Gain
		s.Figures = append(s.Figures, figure("muscle_gain", "Estimated Pure And Only Muscle Gain",
			r.MuscleGainKg, calc.MuscleGainDecimals, "kg"))
		if r.FinalWeightKg != nil {
			s.Figures = append(s.Figures, figure("final_weight", "Estimated Final Body Weight After Muscle Gain",
				*r.FinalWeightKg, calc.FinalWeightDecimals, "kg"))
		}
		s.Inputs = []Echo{
			{Label: "Workout Quality", Value: p.Workout.Label()},
			{Label: "Diet Quality", Value: p.Diet.Label()},
			{Label: "Genetics", Value: p.Genetics.Label()},
			{Label: "Time Before Training", Value: calc.FormatPlain(p.MonthsBeforeTraining) + " months"},
			{Label: "Age", Value: calc.FormatPlain(p.Age) + " years"},
			{Label: "Time of Result", Value: calc.FormatPlain(p.ResultMonths) + " months"},
		}
	case models.KindBodyFat:
		p, r := c.BodyFat, c.Fat
		s.Figures = append(s.Figures, figure("body_fat", "Estimated Body Fat Percentage",
			r.BodyFatPct, calc.BodyFatDecimals, "%"))
		s.Inputs = []Echo{
			{Label: "Height", Value: calc.FormatPlain(p.HeightCm) + " cm"},
			{Label: "Neck Circumference", Value: calc.FormatPlain(p.NeckCm) + " cm"},
			{Label: "Waist Circumference", Value: calc.FormatPlain(p.WaistCm) + " cm"},
		}
	}
	return s
}

// Renderer writes calculations and validation errors in one format.
type Renderer struct {
	Format Format
}

// NewRenderer creates a Renderer for the named format.
func NewRenderer(format string) (*Renderer, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Renderer{Format: f}, nil
}

// Render writes a successful calculation.
func (r *Renderer) Render(w io.Writer, c *models.Calculation) error {
	s := Summarize(c)
	switch r.Format {
	case FormatJSON:
		return writeJSON(w, s)
	case FormatYAML:
		return writeYAML(w, s)
	case FormatMarkdown:
		return writeMarkdown(w, s)
	case FormatHTML:
		return writeHTML(w, s)
	default:
		return writeText(w, s)
	}
}

// RenderErrors writes every validation message of one submission.
func (r *Renderer) RenderErrors(w io.Writer, errs calc.ValidationErrors) error {
	switch r.Format {
	case FormatJSON:
		return writeJSON(w, ErrorReport{Errors: errs})
	case FormatYAML:
		return writeYAML(w, ErrorReport{Errors: errs})
	case FormatMarkdown:
		return writeMarkdownErrors(w, errs)
	case FormatHTML:
		return writeHTMLErrors(w, errs)
	default:
		return writeTextErrors(w, errs)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = w.Write(data)
	return err
}
