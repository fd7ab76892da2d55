// ABOUTME: Catalog of every selectable option and step table.
// ABOUTME: Shared by the options command, the MCP list tool, and the options resource.
package calc

import (
	"slices"

	"github.com/harperreed/gains/internal/models"
)

// Catalog describes the fixed lookup tables of the muscle-gain model.
type Catalog struct {
	WorkoutQuality []models.Option `json:"workout_quality" yaml:"workout_quality"`
	DietQuality    []models.Option `json:"diet_quality" yaml:"diet_quality"`
	GeneticsType   []models.Option `json:"genetics_type" yaml:"genetics_type"`
	TrainingAge    []Bracket       `json:"training_age_months" yaml:"training_age_months"`
	Age            []Bracket       `json:"age_years" yaml:"age_years"`
}

// Options returns a copy of the catalog; callers may modify it freely.
func Options() Catalog {
	return Catalog{
		WorkoutQuality: slices.Clone(models.WorkoutOptions),
		DietQuality:    slices.Clone(models.DietOptions),
		GeneticsType:   slices.Clone(models.GeneticsOptions),
		TrainingAge:    TrainingAgeBrackets(),
		Age:            AgeBrackets(),
	}
}
