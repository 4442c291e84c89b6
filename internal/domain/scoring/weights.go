package scoring

import (
	"errors"
	"fmt"
	"math"
)

const (
	WeightSumTolerance  = 0.02
	DefaultMinThreshold = 60.0
)

var (
	ErrWeightsSum       = errors.New("weights must sum to 1")
	ErrNegativeWeight   = errors.New("weights must not be negative")
	ErrInvalidThreshold = errors.New("min threshold must be between 0 and 100")
)

// WeightVector is the per-job importance of each dimension. Backend weighs the
// complexity dimension.
type WeightVector struct {
	Backend       float64
	Consistency   float64
	Collaboration float64
	Recency       float64
	Impact        float64
}

var DefaultWeights = WeightVector{
	Backend:       0.25,
	Consistency:   0.20,
	Collaboration: 0.20,
	Recency:       0.20,
	Impact:        0.15,
}

func (w WeightVector) Sum() float64 {
	return w.Backend + w.Consistency + w.Collaboration + w.Recency + w.Impact
}

// Validate is applied when a job is created. Stored weights are scored as-is
// even if they no longer satisfy it.
func (w WeightVector) Validate() error {
	for _, f := range w.fields() {
		if !finite(f.value) {
			return &ValidationError{Field: "weights." + f.name}
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeWeight, f.name)
		}
	}
	if math.Abs(w.Sum()-1) >= WeightSumTolerance {
		return fmt.Errorf("%w: got %.4f", ErrWeightsSum, w.Sum())
	}
	return nil
}

func ValidateMinThreshold(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return ErrInvalidThreshold
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

func (w WeightVector) fields() []namedValue {
	return []namedValue{
		{"backend", w.Backend},
		{"consistency", w.Consistency},
		{"collaboration", w.Collaboration},
		{"recency", w.Recency},
		{"impact", w.Impact},
	}
}

func (d DimensionScores) fields() []namedValue {
	return []namedValue{
		{"complexity", d.Complexity},
		{"consistency", d.Consistency},
		{"collaboration", d.Collaboration},
		{"recency", d.Recency},
		{"impact", d.Impact},
	}
}
