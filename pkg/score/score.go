package score

import (
	"fmt"
	"log/slog"
	"math"
)

// ModelVersion is the current scoring model version.
const ModelVersion = "1.0.0"

const (
	// Verification bonus parameters for the source sub-score.
	verificationBonusStep = 0.02
	verificationBonusCap  = 0.1

	// Update bonus parameters for the temporal sub-score.
	updateBonusStep = 0.05
	updateBonusCap  = 0.15

	// DefaultDecay is the relevance lost per day of age when the caller
	// does not supply a decay rate.
	DefaultDecay = 0.05
)

// SourceSignals holds the raw inputs to the source credibility sub-score.
type SourceSignals struct {
	Credibility   float64 // Base credibility rating [0,1]
	Reputation    float64 // Historical source standing [0,1]
	Verifications int     // Independent verification count
}

// ContentSignals holds the raw inputs to the content quality sub-score.
type ContentSignals struct {
	Accuracy     float64 // Factual accuracy rating [0,1]
	Completeness float64 // Coverage rating [0,1]
	Bias         float64 // Bias penalty [0,1], higher = more biased
}

// TemporalSignals holds the raw inputs to the temporal relevance sub-score.
type TemporalSignals struct {
	AgeDays float64 // Age of the information in days
	Updates int     // Recent update count
	Decay   float64 // Relevance lost per day; zero means DefaultDecay
}

// Signals holds the full raw input set for [Compute].
type Signals struct {
	Source   SourceSignals
	Content  ContentSignals
	Temporal TemporalSignals
}

// Source computes the source credibility sub-score (S) in [0.0, 1.0]:
// the mean of credibility and reputation, plus a bonus of 0.02 per
// verification capped at 0.1, capped overall at 1.0.
func Source(s SourceSignals) float64 {
	base := (s.Credibility + s.Reputation) / 2
	bonus := math.Min(float64(s.Verifications)*verificationBonusStep, verificationBonusCap)
	out := math.Min(base+bonus, 1.0)
	slog.Debug(fmt.Sprintf("source: %.4f (base=%.2f, bonus=%.2f)", out, base, bonus))
	return out
}

// Content computes the content quality sub-score (C) in [0.0, 1.0]:
// the mean of accuracy and completeness minus the bias penalty,
// floored at 0.0.
func Content(c ContentSignals) float64 {
	base := (c.Accuracy + c.Completeness) / 2
	out := math.Max(base-c.Bias, 0.0)
	slog.Debug(fmt.Sprintf("content: %.4f (base=%.2f, bias=%.2f)", out, base, c.Bias))
	return out
}

// Temporal computes the temporal relevance sub-score (T) in [0.0, 1.0].
// Decay is linear, not exponential: the base term reaches exactly zero
// at age 1/decay days. A bonus of 0.05 per recent update, capped at
// 0.15, is added on top, with the total capped at 1.0.
func Temporal(t TemporalSignals) float64 {
	decay := t.Decay
	if decay == 0 {
		decay = DefaultDecay
	}
	base := math.Max(1.0-t.AgeDays*decay, 0.0)
	bonus := math.Min(float64(t.Updates)*updateBonusStep, updateBonusCap)
	out := math.Min(base+bonus, 1.0)
	slog.Debug(fmt.Sprintf("temporal: %.4f (base=%.2f, bonus=%.2f, decay=%.3f)", out, base, bonus, decay))
	return out
}

// VRS combines the three sub-scores into the final reputation score:
// w1*S + w2*C + w3*T, rounded to 2 decimals (half away from zero).
// Returns [ErrInvalidWeights] when the weights do not sum to 1.0
// within tolerance. Sub-score values are not re-validated: inputs in
// [0,1] with valid weights always land in [0,1].
func VRS(s, c, t float64, w Weights) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	vrs := w.Source*s + w.Content*c + w.Temporal*t
	out := toFixed(vrs, 2)
	slog.Debug(fmt.Sprintf("vrs: %.2f (s=%.2f, c=%.2f, t=%.2f)", out, s, c, t))
	return out, nil
}

// Compute derives the three sub-scores from raw signals and combines
// them with [VRS]. The weight validation error is propagated unchanged.
func Compute(in Signals, w Weights) (float64, error) {
	return VRS(Source(in.Source), Content(in.Content), Temporal(in.Temporal), w)
}

// toFixed rounds num to the given precision, half away from zero.
func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return math.Round(num*output) / output
}
