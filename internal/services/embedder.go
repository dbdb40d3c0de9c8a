package services

import (
	"context"

	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/config"
)

// NewEmbedder builds the Gemini embedder and, when REDIS_URL is set, wraps it
// in the Redis cache. The returned func releases the cache connection.
func NewEmbedder(ctx context.Context, cfg *config.Config, log *zap.Logger) (analyzer.Embedder, func(), error) {
	gemini, err := NewGeminiService(ctx, cfg.Gemini)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Redis.URL == "" {
		return gemini, func() {}, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		// embeddings still work without the cache
		log.Warn("embedding cache disabled", zap.Error(err))
		return gemini, func() {}, nil
	}

	log.Info("embedding cache enabled", zap.Duration("ttl", cfg.Redis.EmbedTTL))
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}
	return NewCachedEmbedder(gemini, client, gemini.Model(), cfg.Redis.EmbedTTL, log), closeFn, nil
}
