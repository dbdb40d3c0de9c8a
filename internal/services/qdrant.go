package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

const (
	DocTypeResume = "resume"

	defaultQdrantGRPCPort = 6334
	// text-embedding-004
	embeddingSize = 768
)

type QdrantService interface {
	InitCollection(ctx context.Context) error
	UpsertDocument(ctx context.Context, docID string, docType string, chunk int, text string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, docType string, limit int) ([]SearchResult, error)
	DeleteDocument(ctx context.Context, docID string) error
}

// SearchResult is one stored chunk matching a query.
type SearchResult struct {
	ID      string
	Score   float32
	Text    string
	DocType string
	Chunk   int
}

type qdrantService struct {
	client     *qdrant.Client
	collection string
	log        *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collection string, log *zap.Logger) (QdrantService, error) {
	cfg, err := clientConfig(urlStr, apiKey)
	if err != nil {
		return nil, err
	}

	client, err := qdrant.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:     client,
		collection: collection,
		log:        log.With(zap.String("component", "qdrant"), zap.String("collection", collection)),
	}, nil
}

// clientConfig maps QDRANT_URL onto the gRPC client settings. An https scheme
// turns on TLS and a missing port means the default gRPC port.
func clientConfig(urlStr, apiKey string) (*qdrant.Config, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("invalid Qdrant URL %q: missing host", urlStr)
	}

	port := defaultQdrantGRPCPort
	if p := parsed.Port(); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid Qdrant port %q: %w", p, err)
		}
		port = v
	}

	return &qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	}, nil
}

func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		q.log.Debug("collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     embeddingSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("collection created")
	return nil
}

func (q *qdrantService) UpsertDocument(ctx context.Context, docID string, docType string, chunk int, text string, embedding []float32) error {
	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points:         []*qdrant.PointStruct{chunkPoint(docID, docType, chunk, text, embedding)},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert chunk %d of %s: %w", chunk, docID, err)
	}
	return nil
}

func chunkPoint(docID, docType string, chunk int, text string, embedding []float32) *qdrant.PointStruct {
	return &qdrant.PointStruct{
		Id:      qdrant.NewID(uuid.NewString()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"doc_id":   docID,
			"doc_type": docType,
			"chunk":    int64(chunk),
			"text":     text,
		}),
	}
}

func (q *qdrantService) SearchSimilar(ctx context.Context, queryEmbedding []float32, docType string, limit int) ([]SearchResult, error) {
	query := &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if docType != "" {
		query.Filter = matchFilter("doc_type", docType)
	}

	points, err := q.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, toSearchResult(point))
	}
	return results, nil
}

func toSearchResult(point *qdrant.ScoredPoint) SearchResult {
	payload := point.GetPayload()
	return SearchResult{
		ID:      payload["doc_id"].GetStringValue(),
		Score:   point.GetScore(),
		Text:    payload["text"].GetStringValue(),
		DocType: payload["doc_type"].GetStringValue(),
		Chunk:   int(payload["chunk"].GetIntegerValue()),
	}
}

// DeleteDocument removes every chunk stored for docID.
func (q *qdrantService) DeleteDocument(ctx context.Context, docID string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: matchFilter("doc_id", docID),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete chunks of %s: %w", docID, err)
	}
	return nil
}

func matchFilter(field, value string) *qdrant.Filter {
	return &qdrant.Filter{
		Must: []*qdrant.Condition{qdrant.NewMatch(field, value)},
	}
}
