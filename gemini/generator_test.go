package gemini_test

import (
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("pins the assistant to French", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(randoqa.GenerateParams{})
		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Contains(t, config.SystemInstruction.Parts[0].Text, "UNIQUEMENT en français")
		assert.Contains(t, config.SystemInstruction.Parts[0].Text, "randonnée")
	})

	t.Run("maps generation parameters", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(randoqa.GenerateParams{
			MaxTokens:   500,
			Temperature: 0.7,
			Stop:        []string{"\n\n"},
		})
		assert.Equal(t, int32(500), config.MaxOutputTokens)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.7, float64(*config.Temperature), 1e-6)
		assert.Equal(t, []string{"\n\n"}, config.StopSequences)
	})

	t.Run("omits unset parameters", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(randoqa.GenerateParams{})
		assert.Zero(t, config.MaxOutputTokens)
		assert.Nil(t, config.Temperature)
		assert.Empty(t, config.StopSequences)
	})
}
