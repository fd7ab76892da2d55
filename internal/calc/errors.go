// ABOUTME: Validation error types shared by both calculators.
// ABOUTME: ValidationErrors accumulates every failing field in check order.
package calc

import (
	"errors"
	"strings"
)

// ErrorKind classifies why a field was rejected.
type ErrorKind string

const (
	Missing      ErrorKind = "missing"
	NotNumeric   ErrorKind = "not_numeric"
	OutOfRange   ErrorKind = "out_of_range"
	Invalid      ErrorKind = "invalid"
	Inconsistent ErrorKind = "inconsistent"
)

// FieldError is a single rejected field with its fixed message.
type FieldError struct {
	Field   string    `json:"field" yaml:"field"`
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationErrors is the ordered list of field errors for one submission.
// An empty list means the input is valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "\n")
}

// Messages returns the error texts in check order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return msgs
}

// Fields returns the names of the rejected fields in check order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field
	}
	return fields
}

func (v *ValidationErrors) add(field string, kind ErrorKind, msg string) {
	*v = append(*v, FieldError{Field: field, Kind: kind, Message: msg})
}

// AsValidationErrors extracts accumulated validation errors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// Estimator guards. Validation rejects these inputs first; the guards keep
// the estimators total when called directly with unchecked parameters.
var (
	ErrNotNumeric             = errors.New("not a decimal number")
	ErrUnknownOption          = errors.New("unknown workout, diet or genetics option")
	ErrDesiredBodyFatTooHigh  = errors.New("desired body fat must be below 100%")
	ErrWaistNotAboveNeck      = errors.New("waist circumference must be greater than neck circumference")
	ErrNonPositiveMeasurement = errors.New("measurements must be positive")
	ErrNonFinite              = errors.New("result is not a finite number")
)
