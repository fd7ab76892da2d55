// ABOUTME: Entry points turning raw form input into finished calculations.
// ABOUTME: Validation runs first; estimators only see parsed parameters.
package calc

import (
	"fmt"

	"github.com/harperreed/gains/internal/models"
)

// CalculateMuscleGain validates raw and runs the muscle-gain estimate.
// Validation failures are returned as ValidationErrors.
func CalculateMuscleGain(raw RawInput) (*models.Calculation, error) {
	p, err := ParseMuscleGainInputs(raw)
	if err != nil {
		return nil, err
	}
	r, err := EstimateMuscleGain(p)
	if err != nil {
		return nil, fmt.Errorf("estimate muscle gain: %w", err)
	}
	return models.NewMuscleGainCalculation(p, r), nil
}

// CalculateBodyFat validates raw and runs the body-fat estimate.
func CalculateBodyFat(raw RawInput) (*models.Calculation, error) {
	p, err := ParseBodyFatInputs(raw)
	if err != nil {
		return nil, err
	}
	pct, err := EstimateBodyFatPercent(p)
	if err != nil {
		return nil, fmt.Errorf("estimate body fat: %w", err)
	}
	return models.NewBodyFatCalculation(p, models.BodyFatResult{BodyFatPct: pct}), nil
}
