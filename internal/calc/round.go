// ABOUTME: Rounding and number formatting applied at the presentation boundary.
// ABOUTME: Estimators return unrounded values; only display code rounds.
package calc

import (
	"math"
	"strconv"
)

// Display precision for each figure.
const (
	MuscleGainDecimals  = 3
	FinalWeightDecimals = 1
	BodyFatDecimals     = 1
)

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// FormatFixed formats v with exactly places decimals.
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(Round(v, places), 'f', places, 64)
}

// FormatPlain formats an echoed input in its shortest form, e.g. 25 or 25.5.
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
