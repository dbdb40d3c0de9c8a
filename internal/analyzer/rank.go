package analyzer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Candidate struct {
	ID   string
	Text string
}

type SimilarityEntry struct {
	CandidateID string  `json:"candidate_id"`
	Score       float64 `json:"score"`
}

// RankedResults is ordered by score, highest first.
type RankedResults []SimilarityEntry

type CandidateFailure struct {
	CandidateID string
	Err         error
}

type RankOutcome struct {
	Results  RankedResults
	Failures []CandidateFailure
}

type Ranker struct {
	embedder    Embedder
	concurrency int
}

func NewRanker(embedder Embedder, concurrency int) *Ranker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ranker{embedder: embedder, concurrency: concurrency}
}

type rankSlot struct {
	score float64
	err   error
}

// Rank embeds the job description and every candidate and orders the
// candidates by cosine similarity. A candidate whose embedding fails is
// reported in Failures and left out of Results; the other candidates are
// still ranked. Only a failure to embed the job description is returned as
// an error.
func (r *Ranker) Rank(ctx context.Context, jobDescription string, candidates []Candidate) (*RankOutcome, error) {
	outcome := &RankOutcome{Results: RankedResults{}}
	if len(candidates) == 0 {
		return outcome, nil
	}

	jdVec, err := r.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	slots := make([]rankSlot, len(candidates))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			slots[i].err = err
			continue
		}

		select {
		case <-ctx.Done():
			slots[i].err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, c Candidate) {
			defer wg.Done()
			defer func() { <-sem }()

			vec, err := r.embedder.Embed(ctx, c.Text)
			if err != nil {
				slots[i].err = fmt.Errorf("failed to embed candidate %s: %w", c.ID, err)
				return
			}
			slots[i].score = Cosine(jdVec, vec)
		}(i, c)
	}
	wg.Wait()

	for i, slot := range slots {
		if slot.err != nil {
			outcome.Failures = append(outcome.Failures, CandidateFailure{CandidateID: candidates[i].ID, Err: slot.err})
			continue
		}
		outcome.Results = append(outcome.Results, SimilarityEntry{CandidateID: candidates[i].ID, Score: slot.score})
	}

	SortByScore(outcome.Results)
	return outcome, nil
}

// SortByScore orders entries by descending score, keeping input order on ties.
func SortByScore(results RankedResults) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

// Cosine returns the cosine similarity of two vectors. Empty, mismatched or
// zero vectors have similarity 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim))
}
