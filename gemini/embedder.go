package gemini

import (
	"context"

	"github.com/mbonnet/randoqa"
	"google.golang.org/genai"
)

const embedModel = "gemini-embedding-001"

var _ randoqa.Embedder = (*Embedder)(nil)

// Embedder produces embedding vectors with Gemini. One call embeds one
// batch; pacing between batches is the caller's concern.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates an Embedder backed by the given client.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// EmbedBatch embeds the texts in order, one vector per input.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx, embedModel, contents, &genai.EmbedContentConfig{
		TaskType: "RETRIEVAL_DOCUMENT",
	})
	if err != nil {
		return nil, randoqa.Errorf(randoqa.EUNAVAILABLE, "embedding failed: %v", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, randoqa.Errorf(randoqa.EINTERNAL, "expected %d embeddings, got %d", len(texts), len(result.Embeddings))
	}

	vectors := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}
