// ABOUTME: Validated parameter and result types for both calculators.
// ABOUTME: Values here are already parsed; raw form strings live in the calc package.
package models

// BodyComposition is the optional triple that enables the final-weight projection.
type BodyComposition struct {
	WeightKg          float64 `json:"weight_kg" yaml:"weight_kg"`
	CurrentBodyFatPct float64 `json:"current_body_fat_pct" yaml:"current_body_fat_pct"`
	DesiredBodyFatPct float64 `json:"desired_body_fat_pct" yaml:"desired_body_fat_pct"`
}

// MuscleGainParameters are the inputs of the muscle-gain estimate.
type MuscleGainParameters struct {
	Age                  float64          `json:"age" yaml:"age"`
	MonthsBeforeTraining float64          `json:"months_before_training" yaml:"months_before_training"`
	ResultMonths         float64          `json:"result_months" yaml:"result_months"`
	Workout              WorkoutQuality   `json:"workout_quality" yaml:"workout_quality"`
	Diet                 DietQuality      `json:"diet_quality" yaml:"diet_quality"`
	Genetics             GeneticsType     `json:"genetics_type" yaml:"genetics_type"`
	Composition          *BodyComposition `json:"body_composition,omitempty" yaml:"body_composition,omitempty"`
}

// MuscleGainResult holds unrounded estimates in kilograms.
type MuscleGainResult struct {
	MuscleGainKg  float64  `json:"muscle_gain_kg" yaml:"muscle_gain_kg"`
	FinalWeightKg *float64 `json:"final_weight_kg,omitempty" yaml:"final_weight_kg,omitempty"`
}

// BodyFatParameters are circumference measurements in centimeters.
type BodyFatParameters struct {
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`
	NeckCm   float64 `json:"neck_cm" yaml:"neck_cm"`
	WaistCm  float64 `json:"waist_cm" yaml:"waist_cm"`
}

// BodyFatResult holds the unrounded body-fat percentage.
type BodyFatResult struct {
	BodyFatPct float64 `json:"body_fat_pct" yaml:"body_fat_pct"`
}
