package score

import (
	"errors"
	"fmt"
	"math"
)

// weightSumTolerance bounds |w1+w2+w3 - 1.0| during validation.
const weightSumTolerance = 0.01

// ErrInvalidWeights is returned when the combination weights do not
// sum to 1.0 within tolerance.
var ErrInvalidWeights = errors.New("invalid weights")

// Weights defines the relative importance of the three sub-scores.
// The values must sum to 1.0 (within a ±0.01 tolerance).
type Weights struct {
	Source   float64 `json:"source" yaml:"source"`
	Content  float64 `json:"content" yaml:"content"`
	Temporal float64 `json:"temporal" yaml:"temporal"`
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Source:   0.4,
		Content:  0.4,
		Temporal: 0.2,
	}
}

// Sum returns the total of the three weights.
func (w Weights) Sum() float64 {
	return w.Source + w.Content + w.Temporal
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: sum is %.4f, must be 1.0 (±%.2f)", ErrInvalidWeights, w.Sum(), weightSumTolerance)
	}
	return nil
}
