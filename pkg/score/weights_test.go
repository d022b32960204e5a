package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 0.4, w.Source, delta)
	assert.InDelta(t, 0.4, w.Content, delta)
	assert.InDelta(t, 0.2, w.Temporal, delta)
	assert.NoError(t, w.Validate())
}

func TestWeightsSum(t *testing.T) {
	w := Weights{Source: 0.1, Content: 0.2, Temporal: 0.3}
	assert.InDelta(t, 0.6, w.Sum(), delta)
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		valid   bool
	}{
		{"default", DefaultWeights(), true},
		{"custom valid", Weights{Source: 0.5, Content: 0.3, Temporal: 0.2}, true},
		{"near one", Weights{Source: 0.33, Content: 0.33, Temporal: 0.34}, true},
		{"sum too high", Weights{Source: 0.5, Content: 0.5, Temporal: 0.5}, false},
		{"sum too low", Weights{Source: 0.2, Content: 0.2, Temporal: 0.2}, false},
		{"zero weights", Weights{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidWeights)
			}
		})
	}
}
