package cli

import (
	"context"

	urfave "github.com/urfave/cli/v3"
	"github.com/veritasproject/veritas/pkg/config"
	"github.com/veritasproject/veritas/pkg/score"
)

var (
	credibilityFlag = &urfave.FloatFlag{
		Name:     "credibility",
		Usage:    "Base source credibility rating (0.0-1.0)",
		Required: true,
	}

	reputationFlag = &urfave.FloatFlag{
		Name:     "reputation",
		Usage:    "Historical source standing (0.0-1.0)",
		Required: true,
	}

	verificationsFlag = &urfave.IntFlag{
		Name:  "verifications",
		Usage: "Independent verification count (optional, default: 0)",
	}

	accuracyFlag = &urfave.FloatFlag{
		Name:     "accuracy",
		Usage:    "Factual accuracy rating (0.0-1.0)",
		Required: true,
	}

	completenessFlag = &urfave.FloatFlag{
		Name:     "completeness",
		Usage:    "Coverage rating (0.0-1.0)",
		Required: true,
	}

	biasFlag = &urfave.FloatFlag{
		Name:  "bias",
		Usage: "Bias penalty (0.0-1.0, higher = more biased, default: 0)",
	}

	ageFlag = &urfave.FloatFlag{
		Name:     "age",
		Usage:    "Age of the information in days",
		Required: true,
	}

	updatesFlag = &urfave.IntFlag{
		Name:  "updates",
		Usage: "Recent update count (optional, default: 0)",
	}

	decayFlag = &urfave.FloatFlag{
		Name:  "decay",
		Usage: "Relevance lost per day of age (optional, defaults from config)",
	}

	weightSourceFlag = &urfave.FloatFlag{
		Name:  "w-source",
		Usage: "Weight for the source sub-score (optional, defaults from config)",
	}

	weightContentFlag = &urfave.FloatFlag{
		Name:  "w-content",
		Usage: "Weight for the content sub-score (optional, defaults from config)",
	}

	weightTemporalFlag = &urfave.FloatFlag{
		Name:  "w-temporal",
		Usage: "Weight for the temporal sub-score (optional, defaults from config)",
	}
)

// SubScoreResult is the output of the single sub-score commands.
type SubScoreResult struct {
	Kind  string  `json:"kind" yaml:"kind"`
	Score float64 `json:"score" yaml:"score"`
}

// ScoreResult is the output of the score command.
type ScoreResult struct {
	Score    float64       `json:"score" yaml:"score"`
	Source   float64       `json:"source" yaml:"source"`
	Content  float64       `json:"content" yaml:"content"`
	Temporal float64       `json:"temporal" yaml:"temporal"`
	Weights  score.Weights `json:"weights" yaml:"weights"`
	Model    string        `json:"model" yaml:"model"`
}

var sourceCmd = &urfave.Command{
	Name:  "source",
	Usage: "Compute the source credibility sub-score (S)",
	Flags: []urfave.Flag{
		credibilityFlag,
		reputationFlag,
		verificationsFlag,
	},
	Action: cmdSource,
}

var contentCmd = &urfave.Command{
	Name:  "content",
	Usage: "Compute the content quality sub-score (C)",
	Flags: []urfave.Flag{
		accuracyFlag,
		completenessFlag,
		biasFlag,
	},
	Action: cmdContent,
}

var temporalCmd = &urfave.Command{
	Name:  "temporal",
	Usage: "Compute the temporal relevance sub-score (T)",
	Flags: []urfave.Flag{
		ageFlag,
		updatesFlag,
		decayFlag,
	},
	Action: cmdTemporal,
}

var scoreCmd = &urfave.Command{
	Name:  "score",
	Usage: "Compute the full reputation score (VRS) from raw signals",
	Flags: []urfave.Flag{
		credibilityFlag,
		reputationFlag,
		verificationsFlag,
		accuracyFlag,
		completenessFlag,
		biasFlag,
		ageFlag,
		updatesFlag,
		decayFlag,
		weightSourceFlag,
		weightContentFlag,
		weightTemporalFlag,
	},
	Action: cmdScore,
}

var weightsCmd = &urfave.Command{
	Name:   "weights",
	Usage:  "Print the effective scoring configuration",
	Action: cmdWeights,
}

func cmdSource(_ context.Context, c *urfave.Command) error {
	s := score.Source(sourceSignals(c))
	return encode(&SubScoreResult{Kind: "source", Score: s})
}

func cmdContent(_ context.Context, c *urfave.Command) error {
	s := score.Content(contentSignals(c))
	return encode(&SubScoreResult{Kind: "content", Score: s})
}

func cmdTemporal(_ context.Context, c *urfave.Command) error {
	cfg := getConfig(c)
	s := score.Temporal(temporalSignals(c, cfg.Conf))
	return encode(&SubScoreResult{Kind: "temporal", Score: s})
}

func cmdScore(_ context.Context, c *urfave.Command) error {
	cfg := getConfig(c)
	w := effectiveWeights(c, cfg.Conf)

	s := score.Source(sourceSignals(c))
	cn := score.Content(contentSignals(c))
	tm := score.Temporal(temporalSignals(c, cfg.Conf))

	v, err := score.VRS(s, cn, tm, w)
	if err != nil {
		return err
	}

	return encode(&ScoreResult{
		Score:    v,
		Source:   s,
		Content:  cn,
		Temporal: tm,
		Weights:  w,
		Model:    score.ModelVersion,
	})
}

func cmdWeights(_ context.Context, c *urfave.Command) error {
	return encode(getConfig(c).Conf)
}

func sourceSignals(c *urfave.Command) score.SourceSignals {
	return score.SourceSignals{
		Credibility:   c.Float(credibilityFlag.Name),
		Reputation:    c.Float(reputationFlag.Name),
		Verifications: int(c.Int(verificationsFlag.Name)),
	}
}

func contentSignals(c *urfave.Command) score.ContentSignals {
	return score.ContentSignals{
		Accuracy:     c.Float(accuracyFlag.Name),
		Completeness: c.Float(completenessFlag.Name),
		Bias:         c.Float(biasFlag.Name),
	}
}

func temporalSignals(c *urfave.Command, conf *config.Config) score.TemporalSignals {
	decay := conf.Decay
	if c.IsSet(decayFlag.Name) {
		decay = c.Float(decayFlag.Name)
	}
	return score.TemporalSignals{
		AgeDays: c.Float(ageFlag.Name),
		Updates: int(c.Int(updatesFlag.Name)),
		Decay:   decay,
	}
}

func effectiveWeights(c *urfave.Command, conf *config.Config) score.Weights {
	w := conf.Weights
	if c.IsSet(weightSourceFlag.Name) {
		w.Source = c.Float(weightSourceFlag.Name)
	}
	if c.IsSet(weightContentFlag.Name) {
		w.Content = c.Float(weightContentFlag.Name)
	}
	if c.IsSet(weightTemporalFlag.Name) {
		w.Temporal = c.Float(weightTemporalFlag.Name)
	}
	return w
}
