// ABOUTME: Calculation envelope pairing a result with the inputs that produced it.
// ABOUTME: Lives for a single request; nothing is persisted.
package models

import (
	"time"

	"github.com/google/uuid"
)

// CalculationKind identifies which calculator produced a result.
type CalculationKind string

const (
	KindMuscleGain CalculationKind = "muscle_gain"
	KindBodyFat    CalculationKind = "body_fat"
)

// Calculation is one finished computation, ready for rendering.
type Calculation struct {
	ID         uuid.UUID
	Kind       CalculationKind
	CreatedAt  time.Time
	MuscleGain *MuscleGainParameters
	Gain       *MuscleGainResult
	BodyFat    *BodyFatParameters
	Fat        *BodyFatResult
}

// NewMuscleGainCalculation wraps a muscle-gain result with a fresh ID and timestamp.
func NewMuscleGainCalculation(p MuscleGainParameters, r MuscleGainResult) *Calculation {
	return &Calculation{
		ID:         uuid.New(),
		Kind:       KindMuscleGain,
		CreatedAt:  time.Now(),
		MuscleGain: &p,
		Gain:       &r,
	}
}

// NewBodyFatCalculation wraps a body-fat result with a fresh ID and timestamp.
func NewBodyFatCalculation(p BodyFatParameters, r BodyFatResult) *Calculation {
	return &Calculation{
		ID:        uuid.New(),
		Kind:      KindBodyFat,
		CreatedAt: time.Now(),
		BodyFat:   &p,
		Fat:       &r,
	}
}

// ShortID returns the 8-character ID prefix used in terminal output.
func (c *Calculation) ShortID() string {
	return c.ID.String()[:8]
}
