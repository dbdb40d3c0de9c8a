package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/config"
)

// maxEmbedInput keeps requests under the embedding model's token limit.
const maxEmbedInput = 40000

type GeminiService interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

type geminiService struct {
	client     *genai.Client
	embedModel string
	limiter    *rate.Limiter
	timeout    time.Duration
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		embedModel: cfg.EmbedModel,
		limiter:    rate.NewLimiter(rate.Limit(cfg.EmbedRatePerS), cfg.EmbedBurst),
		timeout:    cfg.EmbedTimeout,
	}, nil
}

func (g *geminiService) Model() string {
	return g.embedModel
}

// Embed implements analyzer.Embedder. Calls wait for the rate limiter so a
// large match batch does not exhaust the API quota.
func (g *geminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embedding rate limiter: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(truncateUTF8(text, maxEmbedInput)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
