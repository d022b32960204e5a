package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasproject/veritas/pkg/score"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	app := newApp()
	argv := append([]string{"veritas", "--config", t.TempDir()}, args...)
	return app.Run(context.Background(), argv)
}

func TestApp_HasCommands(t *testing.T) {
	app := newApp()
	require.NotNil(t, app)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "source")
	assert.Contains(t, names, "content")
	assert.Contains(t, names, "temporal")
	assert.Contains(t, names, "score")
	assert.Contains(t, names, "weights")
}

func TestApp_SourceCommand(t *testing.T) {
	err := run(t, "source", "--credibility", "0.8", "--reputation", "0.9", "--verifications", "5")
	assert.NoError(t, err)
}

func TestApp_ContentCommand(t *testing.T) {
	err := run(t, "content", "--accuracy", "0.9", "--completeness", "0.8", "--bias", "0.1")
	assert.NoError(t, err)
}

func TestApp_TemporalCommand(t *testing.T) {
	err := run(t, "temporal", "--age", "10", "--updates", "2")
	assert.NoError(t, err)
}

func TestApp_ScoreCommand(t *testing.T) {
	err := run(t, "score",
		"--credibility", "0.8", "--reputation", "0.9", "--verifications", "5",
		"--accuracy", "0.9", "--completeness", "0.8", "--bias", "0.1",
		"--age", "0")
	assert.NoError(t, err)
}

func TestApp_ScoreCommand_InvalidWeights(t *testing.T) {
	err := run(t, "score",
		"--credibility", "0.5", "--reputation", "0.5",
		"--accuracy", "0.5", "--completeness", "0.5",
		"--age", "1",
		"--w-source", "0.5", "--w-content", "0.5", "--w-temporal", "0.5")
	assert.ErrorIs(t, err, score.ErrInvalidWeights)
}

func TestApp_WeightsCommand(t *testing.T) {
	err := run(t, "weights")
	assert.NoError(t, err)
}

func TestApp_MissingRequiredFlag(t *testing.T) {
	err := run(t, "source", "--credibility", "0.8")
	assert.Error(t, err)
}

func TestApp_YamlFormat(t *testing.T) {
	err := run(t, "--format", "yaml", "weights")
	assert.NoError(t, err)
	outputFormat = formatJSON
}
