// ABOUTME: Body-fat percentage via the U.S. Navy circumference formula for men.
// ABOUTME: Measurements are in centimeters.
package calc

import (
	"math"

	"github.com/harperreed/gains/internal/models"
)

// EstimateBodyFatPercent returns the unrounded body-fat percentage for
// measurements in centimeters. The waist must be larger than the neck.
func EstimateBodyFatPercent(p models.BodyFatParameters) (float64, error) {
	if p.HeightCm <= 0 || p.NeckCm <= 0 || p.WaistCm <= 0 {
		return 0, ErrNonPositiveMeasurement
	}
	diff := p.WaistCm - p.NeckCm
	if diff <= 0 {
		return 0, ErrWaistNotAboveNeck
	}

	pct := 495/(1.0324-0.19077*math.Log10(diff)+0.15456*math.Log10(p.HeightCm)) - 450
	if !isFinite(pct) {
		return 0, ErrNonFinite
	}
	return pct, nil
}
