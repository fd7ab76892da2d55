// ABOUTME: Tests for result and error rendering in every format.
// ABOUTME: Color is disabled so text output can be compared directly.
package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harperreed/gains/internal/calc"
	"github.com/harperreed/gains/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func muscleGainCalculation(withFinal bool) *models.Calculation {
	p := models.MuscleGainParameters{
		Age: 25, MonthsBeforeTraining: 3, ResultMonths: 6,
		Workout: models.WorkoutHigh, Diet: models.DietGood, Genetics: models.GeneticsEasy,
	}
	r := models.MuscleGainResult{MuscleGainKg: 5.6000000000000005}
	if withFinal {
		final := 81.88235294117646
		r.FinalWeightKg = &final
	}
	return models.NewMuscleGainCalculation(p, r)
}

func bodyFatCalculation() *models.Calculation {
	return models.NewBodyFatCalculation(
		models.BodyFatParameters{HeightCm: 180, NeckCm: 40, WaistCm: 90},
		models.BodyFatResult{BodyFatPct: 18.367495150229843},
	)
}

func sampleErrors() calc.ValidationErrors {
	return calc.ValidationErrors{
		{Field: calc.FieldAge, Kind: calc.Missing, Message: "Age is required"},
		{Field: calc.FieldTrainingTime, Kind: calc.Missing, Message: "Time Before Training is required"},
	}
}

func render(t *testing.T, format Format, c *models.Calculation) string {
	t.Helper()
	var buf bytes.Buffer
	r := &Renderer{Format: format}
	require.NoError(t, r.Render(&buf, c))
	return buf.String()
}

func renderErrors(t *testing.T, format Format, errs calc.ValidationErrors) string {
	t.Helper()
	var buf bytes.Buffer
	r := &Renderer{Format: format}
	require.NoError(t, r.RenderErrors(&buf, errs))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	_, err = NewRenderer("pdf")
	assert.Error(t, err)
}

func TestSummarizeMuscleGain(t *testing.T) {
	s := Summarize(muscleGainCalculation(true))

	require.Len(t, s.Figures, 2)
	assert.Equal(t, "5.600 kg", s.Figures[0].Text)
	assert.Equal(t, 5.6, s.Figures[0].Value)
	assert.Equal(t, "81.9 kg", s.Figures[1].Text)
	assert.Equal(t, 81.9, s.Figures[1].Value)
	assert.Equal(t, []Echo{
		{Label: "Workout Quality", Value: "High (Consistent plus Focused and Training till failure)"},
		{Label: "Diet Quality", Value: "Good (High protein and calorie diet (>1.5X gram protein))"},
		{Label: "Genetics", Value: "Easy Muscle Gainer"},
		{Label: "Time Before Training", Value: "3 months"},
		{Label: "Age", Value: "25 years"},
		{Label: "Time of Result", Value: "6 months"},
	}, s.Inputs)
}

func TestSummarizeWithoutFinalWeight(t *testing.T) {
	s := Summarize(muscleGainCalculation(false))
	require.Len(t, s.Figures, 1)
	assert.Equal(t, "muscle_gain", s.Figures[0].Name)
}

func TestSummarizeBodyFat(t *testing.T) {
	s := Summarize(bodyFatCalculation())
	require.Len(t, s.Figures, 1)
	assert.Equal(t, "18.4%", s.Figures[0].Text)
	assert.Equal(t, 18.4, s.Figures[0].Value)
	assert.Len(t, s.Inputs, 3)
}

func TestRenderText(t *testing.T) {
	out := render(t, FormatText, muscleGainCalculation(true))

	assert.Contains(t, out, "Estimated Pure And Only Muscle Gain: 5.600 kg\n")
	assert.Contains(t, out, "Estimated Final Body Weight After Muscle Gain: 81.9 kg\n")
	assert.Contains(t, out, "Age: 25 years\n")
	assert.Contains(t, out, "Genetics: Easy Muscle Gainer\n")
}

func TestRenderTextBodyFat(t *testing.T) {
	out := render(t, FormatText, bodyFatCalculation())
	assert.Contains(t, out, "Estimated Body Fat Percentage: 18.4%\n")
}

func TestRenderTextErrors(t *testing.T) {
	out := renderErrors(t, FormatText, sampleErrors())
	assert.Equal(t, "⚠️ Age is required\n⚠️ Time Before Training is required\n", out)
}

func TestRenderJSON(t *testing.T) {
	out := render(t, FormatJSON, muscleGainCalculation(true))

	var s Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, models.KindMuscleGain, s.Kind)
	assert.Equal(t, 5.6, s.Figures[0].Value)
}

func TestRenderJSONErrors(t *testing.T) {
	out := renderErrors(t, FormatJSON, sampleErrors())

	var rep ErrorReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, sampleErrors(), rep.Errors)
}

func TestRenderYAML(t *testing.T) {
	out := render(t, FormatYAML, bodyFatCalculation())

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "body_fat", decoded["kind"])
	assert.Contains(t, out, "text: 18.4%")
}

func TestRenderYAMLErrors(t *testing.T) {
	out := renderErrors(t, FormatYAML, sampleErrors())
	assert.Contains(t, out, "message: Age is required")
	assert.Contains(t, out, "kind: missing")
}

func TestRenderMarkdown(t *testing.T) {
	out := render(t, FormatMarkdown, muscleGainCalculation(false))

	assert.True(t, strings.HasPrefix(out, "## Muscle Gain Estimate\n"))
	assert.Contains(t, out, "| Estimated Pure And Only Muscle Gain | **5.600 kg** |")
	assert.Contains(t, out, "| Time of Result | 6 months |")

	out = render(t, FormatMarkdown, bodyFatCalculation())
	assert.True(t, strings.HasPrefix(out, "## Body Fat Estimate\n"))
}

func TestRenderMarkdownErrors(t *testing.T) {
	out := renderErrors(t, FormatMarkdown, sampleErrors())
	assert.Contains(t, out, "- ⚠️ Age is required\n")
}

func TestRenderHTML(t *testing.T) {
	out := render(t, FormatHTML, muscleGainCalculation(true))

	assert.Contains(t, out, `style="color: #00ff99"`)
	assert.Contains(t, out, "<b>Estimated Pure And Only Muscle Gain:</b> <b>5.600 kg</b>")
	assert.Contains(t, out, "(&gt;1.5X gram protein)")
	assert.NotContains(t, out, "(>1.5X")
}

func TestRenderHTMLErrors(t *testing.T) {
	out := renderErrors(t, FormatHTML, sampleErrors())

	assert.Contains(t, out, `style="color: #ff4d4d"`)
	assert.Contains(t, out, "⚠️ Age is required<br>⚠️ Time Before Training is required")
}
