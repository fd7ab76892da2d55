// ABOUTME: MCP tool implementations for the calculators.
// ABOUTME: Inputs are raw strings so validation matches the CLI exactly.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/gains/internal/calc"
	"github.com/harperreed/gains/internal/models"
	"github.com/harperreed/gains/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	// estimate_muscle_gain
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_muscle_gain",
		Description: "Estimate lean muscle gain over a training period, and final body weight when weight and body fat are given",
	}, s.handleEstimateMuscleGain)

	// estimate_body_fat
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_body_fat",
		Description: "Estimate body-fat percentage from height, neck and waist circumference (U.S. Navy formula, men)",
	}, s.handleEstimateBodyFat)

	// list_options
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_options",
		Description: "List accepted workout, diet and genetics options with their multipliers, plus the age and training-age tables",
	}, s.handleListOptions)
}

// Tool input/output types

// Input fields are all optional in the schema; the validator reports what
// is missing.

type muscleGainInput struct {
	Age            string `json:"age,omitempty" jsonschema:"age in years, 16 to 60, as a decimal string"`
	TrainingTime   string `json:"training_time,omitempty" jsonschema:"months already spent training, 0 to 300"`
	ResultTime     string `json:"result_time,omitempty" jsonschema:"months to project the gain over"`
	WorkoutQuality string `json:"workout_quality,omitempty" jsonschema:"workout quality label or key (low, medium, high)"`
	DietQuality    string `json:"diet_quality,omitempty" jsonschema:"diet quality label or key (poor, average, good)"`
	GeneticsType   string `json:"genetics_type,omitempty" jsonschema:"genetics label or key (hard, average, easy)"`
	CurrentWeight  string `json:"current_weight,omitempty" jsonschema:"current body weight in kg; enables the final weight projection"`
	CurrentFat     string `json:"current_fat,omitempty" jsonschema:"current body fat percentage"`
	DesiredFat     string `json:"desired_fat,omitempty" jsonschema:"desired body fat percentage, below 100"`
}

type bodyFatInput struct {
	Height string `json:"height,omitempty" jsonschema:"height in cm"`
	Neck   string `json:"neck,omitempty" jsonschema:"neck circumference in cm"`
	Waist  string `json:"waist,omitempty" jsonschema:"waist circumference in cm, larger than the neck"`
}

type listOptionsInput struct{}

type calculationOutput struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	Figures []report.Figure `json:"figures"`
	Inputs  []report.Echo   `json:"inputs"`
	Message string          `json:"message"`
}

func (in muscleGainInput) raw() calc.RawInput {
	return calc.RawInput{
		calc.FieldAge:            in.Age,
		calc.FieldTrainingTime:   in.TrainingTime,
		calc.FieldResultTime:     in.ResultTime,
		calc.FieldWorkoutQuality: in.WorkoutQuality,
		calc.FieldDietQuality:    in.DietQuality,
		calc.FieldGeneticsType:   in.GeneticsType,
		calc.FieldCurrentWeight:  in.CurrentWeight,
		calc.FieldCurrentFat:     in.CurrentFat,
		calc.FieldDesiredFat:     in.DesiredFat,
	}
}

func (in bodyFatInput) raw() calc.RawInput {
	return calc.RawInput{
		calc.FieldHeight: in.Height,
		calc.FieldNeck:   in.Neck,
		calc.FieldWaist:  in.Waist,
	}
}

// Tool handlers

func (s *Server) handleEstimateMuscleGain(ctx context.Context, req *mcp.CallToolRequest, input muscleGainInput) (*mcp.CallToolResult, calculationOutput, error) {
	c, err := calc.CalculateMuscleGain(input.raw())
	if err != nil {
		return nil, calculationOutput{}, s.toolError("estimate_muscle_gain", err)
	}
	return nil, s.toOutput(c), nil
}

func (s *Server) handleEstimateBodyFat(ctx context.Context, req *mcp.CallToolRequest, input bodyFatInput) (*mcp.CallToolResult, calculationOutput, error) {
	c, err := calc.CalculateBodyFat(input.raw())
	if err != nil {
		return nil, calculationOutput{}, s.toolError("estimate_body_fat", err)
	}
	return nil, s.toOutput(c), nil
}

func (s *Server) handleListOptions(ctx context.Context, req *mcp.CallToolRequest, input listOptionsInput) (*mcp.CallToolResult, calc.Catalog, error) {
	return nil, calc.Options(), nil
}

func (s *Server) toOutput(c *models.Calculation) calculationOutput {
	sum := report.Summarize(c)
	lines := make([]string, 0, len(sum.Figures))
	for _, f := range sum.Figures {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Text))
	}

	s.logger.Debug("calculation complete",
		zap.String("id", sum.ID),
		zap.String("kind", string(sum.Kind)))

	return calculationOutput{
		ID:      c.ShortID(),
		Kind:    string(sum.Kind),
		Figures: sum.Figures,
		Inputs:  sum.Inputs,
		Message: strings.Join(lines, "\n"),
	}
}

// toolError lists every validation message so the caller can fix them in one pass.
func (s *Server) toolError(tool string, err error) error {
	if errs, ok := calc.AsValidationErrors(err); ok {
		s.logger.Info("invalid tool input", zap.String("tool", tool), zap.Strings("errors", errs.Messages()))
		return fmt.Errorf("invalid input:\n- %s", strings.Join(errs.Messages(), "\n- "))
	}
	s.logger.Error("calculation failed", zap.String("tool", tool), zap.Error(err))
	return fmt.Errorf("%s failed: %w", tool, err)
}
