// ABOUTME: Raw form input validation for the muscle-gain and body-fat calculators.
// ABOUTME: Every field is checked; each contributes at most one message.
package calc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harperreed/gains/internal/models"
)

// Form field names, as submitted by the front end.
const (
	FieldAge            = "age"
	FieldTrainingTime   = "trainingTime"
	FieldResultTime     = "resultTime"
	FieldWorkoutQuality = "workoutQuality"
	FieldDietQuality    = "dietQuality"
	FieldGeneticsType   = "geneticsType"
	FieldCurrentWeight  = "currentWeight"
	FieldCurrentFat     = "currentFat"
	FieldDesiredFat     = "desiredFat"
	FieldHeight         = "height"
	FieldNeck           = "neck"
	FieldWaist          = "waist"
)

// RawInput maps field names to the strings the user typed or selected.
type RawInput map[string]string

// Get returns the trimmed value of field; absent fields read as empty.
func (r RawInput) Get(field string) string {
	return strings.TrimSpace(r[field])
}

var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseNumber parses a plain decimal literal. Hex literals, NaN, Inf,
// digit separators and trailing characters are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, ErrNotNumeric
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return v, nil
}

type rangeRule struct {
	fails func(float64) bool
	kind  ErrorKind
	msg   string
}

func below(lo float64, msg string) rangeRule {
	return rangeRule{fails: func(v float64) bool { return v < lo }, kind: OutOfRange, msg: msg}
}

func atMost(lo float64, msg string) rangeRule {
	return rangeRule{fails: func(v float64) bool { return v <= lo }, kind: OutOfRange, msg: msg}
}

func above(hi float64, msg string) rangeRule {
	return rangeRule{fails: func(v float64) bool { return v > hi }, kind: OutOfRange, msg: msg}
}

// numericField describes one numeric input and its rule cascade.
// An empty missing message marks the field optional.
type numericField struct {
	name       string
	missing    string
	notNumeric string
	rules      []rangeRule
}

// check runs the cascade, recording the first failure. ok reports whether
// a value was present and passed every rule.
func (f numericField) check(raw RawInput, errs *ValidationErrors) (v float64, ok bool) {
	s := raw.Get(f.name)
	if s == "" {
		if f.missing != "" {
			errs.add(f.name, Missing, f.missing)
		}
		return 0, false
	}
	v, err := ParseNumber(s)
	if err != nil {
		errs.add(f.name, NotNumeric, f.notNumeric)
		return 0, false
	}
	for _, r := range f.rules {
		if r.fails(v) {
			errs.add(f.name, r.kind, r.msg)
			return 0, false
		}
	}
	return v, true
}

var (
	ageField = numericField{
		name:       FieldAge,
		missing:    "Age is required",
		notNumeric: "Please input numeric value for Age",
		rules: []rangeRule{
			below(0, "Age can't be negative"),
			below(16, "Age is too low"),
			above(60, "Age is too high"),
		},
	}
	trainingTimeField = numericField{
		name:       FieldTrainingTime,
		missing:    "Time Before Training is required",
		notNumeric: "Please input numeric value for Time Before Training",
		rules: []rangeRule{
			below(0, "Before trained time can't be negative"),
			above(300, "Months are too high"),
		},
	}
	currentWeightField = numericField{
		name:       FieldCurrentWeight,
		notNumeric: "Enter numeric value for Current Weight",
		rules: []rangeRule{
			atMost(0, "There should be some weight"),
			above(300, "Weight is too heavy"),
		},
	}
	currentFatField = numericField{
		name:       FieldCurrentFat,
		notNumeric: "Please enter numeric value in Current Body Fat (%)",
		rules: []rangeRule{
			atMost(0, "Current Body Fat (%) is too low"),
			above(100, "Current Body Fat (%) is too high"),
		},
	}
	desiredFatField = numericField{
		name:       FieldDesiredFat,
		notNumeric: "Please enter numeric value in Desired Body Fat (%)",
		rules: []rangeRule{
			atMost(0, "Desired Body Fat (%) is too low"),
			above(100, "Desired Body Fat (%) is too high"),
			// 100% leaves no lean mass to project a final weight from.
			{fails: func(v float64) bool { return v >= 100 }, kind: Inconsistent, msg: "Desired Body Fat (%) must be below 100"},
		},
	}
	resultTimeField = numericField{
		name:       FieldResultTime,
		missing:    "Please select Time of Result",
		notNumeric: "Please input numeric value for Time of Result",
		rules: []rangeRule{
			below(0, "Time of Result can't be negative"),
		},
	}

	heightField = numericField{
		name:       FieldHeight,
		missing:    "Height is required",
		notNumeric: "Please enter numeric value for height",
		rules: []rangeRule{
			atMost(0, "There should be some height"),
			above(500, "Height is too high"),
		},
	}
	neckField = numericField{
		name:       FieldNeck,
		missing:    "Neck Circumference is required",
		notNumeric: "Please enter numeric value for neck circumference",
		rules: []rangeRule{
			atMost(0, "There should be some neck circumference"),
			above(300, "Neck Circumference is too thick"),
		},
	}
	waistField = numericField{
		name:       FieldWaist,
		missing:    "Waist Circumference is required",
		notNumeric: "Please enter numeric value for waist circumference",
		rules: []rangeRule{
			atMost(0, "There should be some waist circumference"),
			above(400, "Waist circumference is too thick"),
		},
	}
)

// checkChoice validates a selection field. parse reports whether the trimmed
// value names a known option.
func checkChoice(raw RawInput, errs *ValidationErrors, field, label string, parse func(string) bool) bool {
	s := raw.Get(field)
	if s == "" {
		errs.add(field, Missing, "Please select "+label)
		return false
	}
	if !parse(s) {
		errs.add(field, Invalid, "Please select a valid "+label)
		return false
	}
	return true
}

// ValidateMuscleGainInputs checks every muscle-gain field and returns all
// failures in field order. A nil result means the input is valid.
func ValidateMuscleGainInputs(raw RawInput) ValidationErrors {
	_, errs := parseMuscleGain(raw)
	return errs
}

// ParseMuscleGainInputs validates raw and converts it into parameters.
// The body composition is set only when all three optional fields are valid.
func ParseMuscleGainInputs(raw RawInput) (models.MuscleGainParameters, error) {
	p, errs := parseMuscleGain(raw)
	if len(errs) > 0 {
		return models.MuscleGainParameters{}, errs
	}
	return p, nil
}

func parseMuscleGain(raw RawInput) (models.MuscleGainParameters, ValidationErrors) {
	var (
		p    models.MuscleGainParameters
		errs ValidationErrors
	)

	p.Age, _ = ageField.check(raw, &errs)
	p.MonthsBeforeTraining, _ = trainingTimeField.check(raw, &errs)

	weight, weightOK := currentWeightField.check(raw, &errs)
	currentFat, currentOK := currentFatField.check(raw, &errs)
	desiredFat, desiredOK := desiredFatField.check(raw, &errs)
	if weightOK && currentOK && desiredOK {
		p.Composition = &models.BodyComposition{
			WeightKg:          weight,
			CurrentBodyFatPct: currentFat,
			DesiredBodyFatPct: desiredFat,
		}
	}

	checkChoice(raw, &errs, FieldWorkoutQuality, "Workout Quality", func(s string) bool {
		var ok bool
		p.Workout, ok = models.ParseWorkoutQuality(s)
		return ok
	})
	checkChoice(raw, &errs, FieldDietQuality, "Diet Quality", func(s string) bool {
		var ok bool
		p.Diet, ok = models.ParseDietQuality(s)
		return ok
	})
	checkChoice(raw, &errs, FieldGeneticsType, "Genetics Type", func(s string) bool {
		var ok bool
		p.Genetics, ok = models.ParseGeneticsType(s)
		return ok
	})

	p.ResultMonths, _ = resultTimeField.check(raw, &errs)

	return p, errs
}

// ValidateBodyFatInputs checks height, neck and waist, plus the requirement
// that the waist is larger than the neck.
func ValidateBodyFatInputs(raw RawInput) ValidationErrors {
	_, errs := parseBodyFat(raw)
	return errs
}

// ParseBodyFatInputs validates raw and converts it into parameters.
func ParseBodyFatInputs(raw RawInput) (models.BodyFatParameters, error) {
	p, errs := parseBodyFat(raw)
	if len(errs) > 0 {
		return models.BodyFatParameters{}, errs
	}
	return p, nil
}

func parseBodyFat(raw RawInput) (models.BodyFatParameters, ValidationErrors) {
	var (
		p    models.BodyFatParameters
		errs ValidationErrors
	)

	p.HeightCm, _ = heightField.check(raw, &errs)
	neck, neckOK := neckField.check(raw, &errs)
	waist, waistOK := waistField.check(raw, &errs)
	p.NeckCm, p.WaistCm = neck, waist

	if neckOK && waistOK && waist <= neck {
		errs.add(FieldWaist, Inconsistent, "Waist circumference must be greater than neck circumference")
	}

	return p, errs
}
