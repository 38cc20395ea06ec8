// Package gemini implements the hosted-model collaborators using
// Google Gemini: free-text generation for the question fallback and
// embeddings for semantic search.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mbonnet/randoqa"
	"google.golang.org/genai"
)

const generateModel = "gemini-2.5-flash"

// DefaultCooldown is how long to wait after a rate-limit response
// before the single retry.
const DefaultCooldown = 70 * time.Second

// systemInstruction pins the assistant to French hiking answers.
const systemInstruction = `Tu es un assistant francophone spécialisé dans la randonnée. Instructions IMPORTANTES :
1. Tu DOIS TOUJOURS répondre UNIQUEMENT en français
2. Utilise un langage naturel et chaleureux
3. Si la question concerne une randonnée ou un lieu, donne des informations pertinentes`

var _ randoqa.Generator = (*Generator)(nil)

// Generator produces free text with Gemini.
type Generator struct {
	client   *genai.Client
	cooldown time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCooldown overrides the rate-limit cooldown.
func WithCooldown(d time.Duration) GeneratorOption {
	return func(g *Generator) { g.cooldown = d }
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client *genai.Client, opts ...GeneratorOption) *Generator {
	g := &Generator{client: client, cooldown: DefaultCooldown}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends the prompt to the model and returns its trimmed
// output. A rate-limited call waits out the cooldown and retries once;
// other failures surface as EUNAVAILABLE.
func (g *Generator) Generate(ctx context.Context, prompt string, params randoqa.GenerateParams) (string, error) {
	config := BuildConfig(params)
	contents := genai.Text(prompt)

	result, err := g.client.Models.GenerateContent(ctx, generateModel, contents, config)
	if isRateLimited(err) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.cooldown):
		}
		result, err = g.client.Models.GenerateContent(ctx, generateModel, contents, config)
	}
	if err != nil {
		return "", randoqa.Errorf(randoqa.EUNAVAILABLE, "text generation failed: %v", err)
	}
	if result == nil {
		return "", randoqa.Errorf(randoqa.EINTERNAL, "model returned no result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig maps generation parameters onto the Gemini call config.
func BuildConfig(params randoqa.GenerateParams) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}
	if params.MaxTokens > 0 {
		config.MaxOutputTokens = params.MaxTokens
	}
	if params.Temperature > 0 {
		config.Temperature = genai.Ptr(params.Temperature)
	}
	if len(params.Stop) > 0 {
		config.StopSequences = params.Stop
	}
	return config
}

// isRateLimited reports whether err is an HTTP 429 from the API.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}
