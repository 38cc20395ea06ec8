package randoqa_test

import (
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, randoqa.CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, randoqa.CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, randoqa.CosineSimilarity(nil, []float32{1}))
	assert.Equal(t, 0.0, randoqa.CosineSimilarity([]float32{0, 0}, []float32{0, 0}))
}
