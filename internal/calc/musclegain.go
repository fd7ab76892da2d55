// ABOUTME: Muscle-gain estimate from training age, age and three quality multipliers.
// ABOUTME: Also projects final body weight when body composition is known.
package calc

import (
	"fmt"
	"math"

	"github.com/harperreed/gains/internal/models"
)

type band struct {
	limit  float64
	factor float64
}

// Training-age bands are upper-inclusive: months <= limit.
var trainingAgeBands = []band{
	{6, 11.2},
	{12, 9.1},
	{18, 7.1},
	{24, 6.1},
	{30, 5.1},
	{36, 4.1},
	{42, 3.1},
	{48, 1.8},
	{54, 1.2},
	{60, 0.92},
}

const veteranFactor = 0.8

// Age bands are upper-exclusive: age < limit.
var ageBands = []band{
	{29, 1.0},
	{36, 1.15},
	{41, 1.46},
	{46, 1.69},
}

const (
	minTrainingAge = 16
	oldestFactor   = 2.44
)

// TimeBeforeTrainingFactor returns the yearly gain potential for a trainee
// who has already trained for the given number of months.
func TimeBeforeTrainingFactor(months float64) float64 {
	for _, b := range trainingAgeBands {
		if months <= b.limit {
			return b.factor
		}
	}
	return veteranFactor
}

// AgeFactor returns the slowdown divisor for the trainee's age.
func AgeFactor(age float64) float64 {
	for _, b := range ageBands {
		if age < b.limit {
			return b.factor
		}
	}
	return oldestFactor
}

// Bracket is one printable row of a step table.
type Bracket struct {
	Range  string  `json:"range" yaml:"range"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// TrainingAgeBrackets lists the training-age table in whole months.
func TrainingAgeBrackets() []Bracket {
	out := make([]Bracket, 0, len(trainingAgeBands)+1)
	lower := 0.0
	for _, b := range trainingAgeBands {
		out = append(out, Bracket{Range: fmt.Sprintf("%g–%g", lower, b.limit), Factor: b.factor})
		lower = b.limit + 1
	}
	last := trainingAgeBands[len(trainingAgeBands)-1].limit
	return append(out, Bracket{Range: fmt.Sprintf(">%g", last), Factor: veteranFactor})
}

// AgeBrackets lists the age table in whole years.
func AgeBrackets() []Bracket {
	out := make([]Bracket, 0, len(ageBands)+1)
	lower := float64(minTrainingAge)
	for _, b := range ageBands {
		out = append(out, Bracket{Range: fmt.Sprintf("%g–%g", lower, b.limit-1), Factor: b.factor})
		lower = b.limit
	}
	return append(out, Bracket{Range: fmt.Sprintf("≥%g", lower), Factor: oldestFactor})
}

// EstimateMuscleGain computes the expected lean gain in kilograms over
// p.ResultMonths. The combined factors give a yearly figure that is spread
// evenly across months. Results are not rounded.
func EstimateMuscleGain(p models.MuscleGainParameters) (models.MuscleGainResult, error) {
	if !p.Workout.Valid() || !p.Diet.Valid() || !p.Genetics.Valid() {
		return models.MuscleGainResult{}, ErrUnknownOption
	}

	yearly := TimeBeforeTrainingFactor(p.MonthsBeforeTraining) / AgeFactor(p.Age)
	yearly = yearly / p.Workout.Multiplier() / p.Diet.Multiplier() / p.Genetics.Multiplier()
	gain := yearly / 12 * p.ResultMonths
	if !isFinite(gain) {
		return models.MuscleGainResult{}, ErrNonFinite
	}

	result := models.MuscleGainResult{MuscleGainKg: gain}
	if p.Composition != nil {
		final, err := ProjectFinalWeight(*p.Composition, gain)
		if err != nil {
			return models.MuscleGainResult{}, err
		}
		result.FinalWeightKg = &final
	}
	return result, nil
}

// ProjectFinalWeight adds gainKg to the current lean mass and returns the
// body weight at which that lean mass sits at the desired body-fat level.
func ProjectFinalWeight(c models.BodyComposition, gainKg float64) (float64, error) {
	if c.DesiredBodyFatPct >= 100 {
		return 0, ErrDesiredBodyFatTooHigh
	}
	lean := c.WeightKg * (1 - c.CurrentBodyFatPct/100)
	final := (lean + gainKg) / (1 - c.DesiredBodyFatPct/100)
	if !isFinite(final) {
		return 0, ErrNonFinite
	}
	return final, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
