package randoqa

import (
	"context"
	"math"
)

// GenerateParams are the generation controls passed through to the
// hosted language model.
type GenerateParams struct {
	MaxTokens   int32
	Temperature float32
	Stop        []string
}

// Generator produces free text from a hosted generative language model.
// The resolver treats it as a black box and only trims its output.
type Generator interface {
	Generate(ctx context.Context, prompt string, params GenerateParams) (string, error)
}

// Embedder produces embedding vectors for batches of texts.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// CosineSimilarity returns the cosine similarity between two vectors,
// or 0 when either vector is empty or zero-length.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
