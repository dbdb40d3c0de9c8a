package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

const (
	indexChunkSize    = 1500
	indexChunkOverlap = 150
)

// ResumeIndexer stores résumé text in the vector index so that stored
// résumés can be searched by job description later.
type ResumeIndexer interface {
	IndexResume(ctx context.Context, docID string, text string) (int, error)
}

type resumeIndexer struct {
	embedder analyzer.Embedder
	index    QdrantService
	chunker  TextChunker
	log      *zap.Logger
}

func NewResumeIndexer(embedder analyzer.Embedder, index QdrantService, chunker TextChunker, log *zap.Logger) ResumeIndexer {
	return &resumeIndexer{
		embedder: embedder,
		index:    index,
		chunker:  chunker,
		log:      log.With(zap.String("component", "indexer")),
	}
}

// IndexResume replaces any previous chunks of docID and returns the number of
// chunks stored.
func (r *resumeIndexer) IndexResume(ctx context.Context, docID string, text string) (int, error) {
	if err := r.index.DeleteDocument(ctx, docID); err != nil {
		return 0, fmt.Errorf("failed to clear previous chunks: %w", err)
	}

	chunks := r.chunker.ChunkText(CleanParagraphs(text), indexChunkSize, indexChunkOverlap)
	for i, chunk := range chunks {
		embedding, err := r.embedder.Embed(ctx, chunk)
		if err != nil {
			return i, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		if err := r.index.UpsertDocument(ctx, docID, DocTypeResume, i, chunk, embedding); err != nil {
			return i, fmt.Errorf("failed to store chunk %d: %w", i, err)
		}
	}

	r.log.Debug("resume indexed", zap.String("doc_id", docID), zap.Int("chunks", len(chunks)))
	return len(chunks), nil
}
