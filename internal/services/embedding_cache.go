package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

// errCacheMiss is returned by an embeddingStore when the key is absent.
var errCacheMiss = errors.New("cache miss")

type embeddingStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	return data, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// NewRedisClient connects to the Redis instance at url.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// CachedEmbedder memoises embeddings by model and text hash. Cache errors are
// logged and never fail the call.
type CachedEmbedder struct {
	inner analyzer.Embedder
	store embeddingStore
	model string
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedEmbedder(inner analyzer.Embedder, client *redis.Client, model string, ttl time.Duration, log *zap.Logger) *CachedEmbedder {
	return newCachedEmbedder(inner, &redisStore{client: client}, model, ttl, log)
}

func newCachedEmbedder(inner analyzer.Embedder, store embeddingStore, model string, ttl time.Duration, log *zap.Logger) *CachedEmbedder {
	return &CachedEmbedder{
		inner: inner,
		store: store,
		model: model,
		ttl:   ttl,
		log:   log.With(zap.String("component", "embedding_cache")),
	}
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	data, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var vec []float32
		if jsonErr := json.Unmarshal(data, &vec); jsonErr == nil && len(vec) > 0 {
			return vec, nil
		}
		c.log.Warn("discarding corrupt cache entry", zap.String("key", key))
	case !errors.Is(err, errCacheMiss):
		c.log.Warn("cache read failed", zap.Error(err))
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(vec)
	if err == nil {
		err = c.store.Set(ctx, key, payload, c.ttl)
	}
	if err != nil {
		c.log.Warn("cache write failed", zap.Error(err))
	}

	return vec, nil
}

func (c *CachedEmbedder) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("embedding:%s:%s", c.model, hex.EncodeToString(sum[:]))
}
