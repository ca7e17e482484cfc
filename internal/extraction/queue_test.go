package extraction

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
)

func TestQueueProcessesAndDrains(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
	w, jobs, _, done := newTestWorker(t, handler, time.Minute)
	defer done()

	q := NewQueue(w, slog.Default(), WithWorkers(1), WithQueueSize(4))

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	if err := q.Enqueue(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := jobs.status[jobID]; got != constants.JobStatusCompleted {
		t.Errorf("job status after drain = %s, want completed", got)
	}
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
	w, jobs, posters, done := newTestWorker(t, handler, time.Minute)
	defer done()

	q := NewQueue(w, slog.Default(), WithWorkers(1), WithQueueSize(1))
	q.Shutdown(context.Background())

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	err := q.Enqueue(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")})
	if err == nil {
		t.Fatal("Enqueue on a shut-down queue returned nil; the caller would report success for a dropped task")
	}
	if len(posters.created) != 0 {
		t.Error("task processed after shutdown")
	}
}
