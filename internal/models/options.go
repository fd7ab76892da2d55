// ABOUTME: Closed enumerations for workout quality, diet quality and genetics.
// ABOUTME: Each value carries its display label and the multiplier used by the muscle-gain model.
package models

import "strings"

// Option describes one selectable value of a categorical input.
type Option struct {
	Key        string  `json:"key" yaml:"key"`
	Label      string  `json:"label" yaml:"label"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// WorkoutQuality is how consistently and how hard the trainee works out.
type WorkoutQuality string

const (
	WorkoutLow    WorkoutQuality = "low"
	WorkoutMedium WorkoutQuality = "medium"
	WorkoutHigh   WorkoutQuality = "high"
)

// DietQuality is how well protein and calorie intake supports growth.
type DietQuality string

const (
	DietPoor    DietQuality = "poor"
	DietAverage DietQuality = "average"
	DietGood    DietQuality = "good"
)

// GeneticsType is the trainee's natural responsiveness to training.
type GeneticsType string

const (
	GeneticsHard    GeneticsType = "hard"
	GeneticsAverage GeneticsType = "average"
	GeneticsEasy    GeneticsType = "easy"
)

// WorkoutOptions lists workout qualities in display order.
var WorkoutOptions = []Option{
	{Key: string(WorkoutLow), Label: "Low (Not Consistent)", Multiplier: 1.69},
	{Key: string(WorkoutMedium), Label: "Medium (Consistent but not Focused)", Multiplier: 1.22},
	{Key: string(WorkoutHigh), Label: "High (Consistent plus Focused and Training till failure)", Multiplier: 1.0},
}

// DietOptions lists diet qualities in display order.
var DietOptions = []Option{
	{Key: string(DietPoor), Label: "Poor (Low protein and calorie diet (≥0.5X and <1X gram protein))", Multiplier: 1.30},
	{Key: string(DietAverage), Label: "Average (Good protein and calorie diet (≥1X and <1.5X gram protein))", Multiplier: 1.15},
	{Key: string(DietGood), Label: "Good (High protein and calorie diet (>1.5X gram protein))", Multiplier: 1.0},
}

// GeneticsOptions lists genetics types in display order.
var GeneticsOptions = []Option{
	{Key: string(GeneticsHard), Label: "Hard Muscle Gainer", Multiplier: 1.57},
	{Key: string(GeneticsAverage), Label: "Average Muscle Gainer", Multiplier: 1.22},
	{Key: string(GeneticsEasy), Label: "Easy Muscle Gainer", Multiplier: 1.0},
}

// ParseWorkoutQuality accepts either the exact display label or the short key.
func ParseWorkoutQuality(s string) (WorkoutQuality, bool) {
	o, ok := matchOption(WorkoutOptions, s)
	return WorkoutQuality(o.Key), ok
}

// ParseDietQuality accepts either the exact display label or the short key.
func ParseDietQuality(s string) (DietQuality, bool) {
	o, ok := matchOption(DietOptions, s)
	return DietQuality(o.Key), ok
}

// ParseGeneticsType accepts either the exact display label or the short key.
func ParseGeneticsType(s string) (GeneticsType, bool) {
	o, ok := matchOption(GeneticsOptions, s)
	return GeneticsType(o.Key), ok
}

// Label returns the display label, or "" for an unknown workout quality.
func (w WorkoutQuality) Label() string {
	return optionFor(WorkoutOptions, string(w)).Label
}

// Multiplier returns the divisor applied to the yearly gain.
func (w WorkoutQuality) Multiplier() float64 {
	return optionFor(WorkoutOptions, string(w)).Multiplier
}

// Valid reports whether w is one of the listed workout quality keys.
func (w WorkoutQuality) Valid() bool {
	return optionFor(WorkoutOptions, string(w)).Key != ""
}

// Label returns the display label, or "" for an unknown diet quality.
func (d DietQuality) Label() string {
	return optionFor(DietOptions, string(d)).Label
}

// Multiplier returns the divisor applied to the yearly gain.
func (d DietQuality) Multiplier() float64 {
	return optionFor(DietOptions, string(d)).Multiplier
}

// Valid reports whether d is one of the listed diet quality keys.
func (d DietQuality) Valid() bool {
	return optionFor(DietOptions, string(d)).Key != ""
}

// Label returns the display label, or "" for an unknown genetics type.
func (g GeneticsType) Label() string {
	return optionFor(GeneticsOptions, string(g)).Label
}

// Multiplier returns the divisor applied to the yearly gain.
func (g GeneticsType) Multiplier() float64 {
	return optionFor(GeneticsOptions, string(g)).Multiplier
}

// Valid reports whether g is one of the listed genetics type keys.
func (g GeneticsType) Valid() bool {
	return optionFor(GeneticsOptions, string(g)).Key != ""
}

// Labels are matched verbatim; keys ignore case.
func matchOption(opts []Option, s string) (Option, bool) {
	for _, o := range opts {
		if s == o.Label || strings.EqualFold(s, o.Key) {
			return o, true
		}
	}
	return Option{}, false
}

func optionFor(opts []Option, key string) Option {
	for _, o := range opts {
		if o.Key == key {
			return o
		}
	}
	return Option{}
}
