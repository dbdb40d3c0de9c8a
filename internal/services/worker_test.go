package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func waitForStatus(t *testing.T, repo *memoryMatchRepo, id uuid.UUID, want models.MatchStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if job, err := repo.FindByID(id); err == nil && job.Status == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, want)
}

func TestWorkerProcessesEnqueuedJob(t *testing.T) {
	f := newMatchFixture(t)
	svc := NewMatchService(f.jobs, f.docs, f.extractor(), f.embedder, nil, 2, zap.NewNop())
	w := NewWorker(f.jobs, svc, 2, time.Hour, zap.NewNop())

	w.Start(context.Background())
	defer w.Stop()

	jobID := f.queue(t, "golang", f.ids...)
	w.EnqueueJob(jobID)

	waitForStatus(t, f.jobs, jobID, models.StatusCompleted)
}

func TestWorkerPicksUpPendingJobs(t *testing.T) {
	f := newMatchFixture(t)
	svc := NewMatchService(f.jobs, f.docs, f.extractor(), f.embedder, nil, 1, zap.NewNop())
	jobID := f.queue(t, "design", f.ids...)

	w := NewWorker(f.jobs, svc, 1, 10*time.Millisecond, zap.NewNop())
	w.Start(context.Background())
	defer w.Stop()

	waitForStatus(t, f.jobs, jobID, models.StatusCompleted)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	w := NewWorker(&memoryMatchRepo{}, nil, 1, time.Hour, zap.NewNop())
	w.Start(context.Background())
	w.Stop()
	w.Stop()

	done := make(chan struct{})
	go func() {
		w.EnqueueJob(uuid.New())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("EnqueueJob blocked after Stop")
	}
}
