package mock

import (
	"context"

	"github.com/mbonnet/randoqa"
)

var _ randoqa.Generator = (*Generator)(nil)

// Generator is a mock implementation of randoqa.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string, params randoqa.GenerateParams) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string, params randoqa.GenerateParams) (string, error) {
	return g.GenerateFn(ctx, prompt, params)
}

var _ randoqa.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of randoqa.Embedder.
type Embedder struct {
	EmbedBatchFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedBatchFn(ctx, texts)
}
