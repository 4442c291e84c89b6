package scoring

import (
	"errors"
	"math"
)

var ErrInvalidInput = errors.New("invalid scoring input")

// ValidationError names the first non-finite field found in an Input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return "invalid scoring input: " + e.Field + " is not a finite number"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate rejects NaN and infinite values before they reach Score, which
// would otherwise let them flow silently through every comparison.
func Validate(in Input) error {
	for _, f := range in.Dimensions.fields() {
		if !finite(f.value) {
			return &ValidationError{Field: "dimensions." + f.name}
		}
	}
	for _, f := range in.Weights.fields() {
		if !finite(f.value) {
			return &ValidationError{Field: "weights." + f.name}
		}
	}
	if !finite(in.DataCompleteness) {
		return &ValidationError{Field: "data_completeness"}
	}
	if !finite(in.MinThreshold) {
		return &ValidationError{Field: "min_threshold"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
