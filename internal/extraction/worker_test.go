package extraction

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/internal/entity"
)

type fakeJobRepo struct {
	mu     sync.Mutex
	status map[uuid.UUID]constants.JobStatus
	errMsg map[uuid.UUID]string
	poster map[uuid.UUID]uuid.UUID
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		status: make(map[uuid.UUID]constants.JobStatus),
		errMsg: make(map[uuid.UUID]string),
		poster: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *fakeJobRepo) Create(_ context.Context, userID uuid.UUID) (*entity.ExtractionJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.status[id] = constants.JobStatusPending
	return &entity.ExtractionJob{ID: id, UserID: userID, Status: constants.JobStatusPending}, nil
}

func (r *fakeJobRepo) Get(_ context.Context, jobID uuid.UUID) (*entity.ExtractionJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &entity.ExtractionJob{ID: jobID, Status: r.status[jobID], ErrorMessage: r.errMsg[jobID]}, nil
}

func (r *fakeJobRepo) MarkProcessing(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[jobID] = constants.JobStatusProcessing
	return nil
}

func (r *fakeJobRepo) Complete(_ context.Context, jobID, posterID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[jobID] = constants.JobStatusCompleted
	r.poster[jobID] = posterID
	return nil
}

func (r *fakeJobRepo) Fail(_ context.Context, jobID uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[jobID] = constants.JobStatusFailed
	r.errMsg[jobID] = message
	return nil
}

func (r *fakeJobRepo) ResetStuckProcessing(context.Context, time.Duration) (int, error) {
	return 0, nil
}

type fakePosterRepo struct {
	mu      sync.Mutex
	created []*entity.Poster
}

func (r *fakePosterRepo) CreateWithMetadata(_ context.Context, userID uuid.UUID, title, description, imageURL string, meta *entity.PosterMetadata) (*entity.Poster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &entity.Poster{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Status:      constants.PosterStatusDraft,
		Metadata:    meta,
	}
	r.created = append(r.created, p)
	return p, nil
}

func (r *fakePosterRepo) GetWithMetadata(_ context.Context, posterID uuid.UUID) (*entity.Poster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.created {
		if p.ID == posterID {
			return p, nil
		}
	}
	return nil, context.Canceled
}

func (r *fakePosterRepo) List(context.Context, uuid.UUID) ([]*entity.Poster, error) {
	return nil, nil
}

func (r *fakePosterRepo) UpdateMetadata(context.Context, uuid.UUID, string, string, *entity.PosterMetadata) error {
	return nil
}

func (r *fakePosterRepo) MarkPublished(context.Context, uuid.UUID, string) error {
	return nil
}

func newTestWorker(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*Worker, *fakeJobRepo, *fakePosterRepo, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	jobs := newFakeJobRepo()
	posters := &fakePosterRepo{}
	client := NewClient(srv.URL, timeout, slog.Default())
	w := NewWorker(jobs, posters, client, slog.Default())
	return w, jobs, posters, srv.Close
}

func TestWorkerProcessSuccess(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"titles": [{"title": "Deep Learning for Protein Folding"}],
			"descriptions": [{"description": "A study."}],
			"creators": [{"name": "Doe, Jane", "affiliation": ["MIT"]}],
			"researchField": "Biology"
		}`))
	}
	w, jobs, posters, done := newTestWorker(t, handler, time.Minute)
	defer done()

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	task := Task{JobID: jobID, UserID: uuid.New(), FileName: "poster.pdf", ContentType: "application/pdf", Data: []byte("pdf bytes")}

	if err := w.Process(context.Background(), task); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := jobs.status[jobID]; got != constants.JobStatusCompleted {
		t.Errorf("job status = %s, want completed", got)
	}
	if len(posters.created) != 1 {
		t.Fatalf("posters created = %d, want 1", len(posters.created))
	}
	p := posters.created[0]
	if p.Title != "Deep Learning for Protein Folding" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Metadata.Domain != "Biology" {
		t.Errorf("domain = %q, want Biology", p.Metadata.Domain)
	}
	if jobs.poster[jobID] != p.ID {
		t.Error("job not linked to created poster")
	}
	if !strings.Contains(p.ImageURL, "picsum.photos") {
		t.Errorf("imageURL = %q, want placeholder image", p.ImageURL)
	}
}

func TestWorkerProcessPlaceholders(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
	w, jobs, posters, done := newTestWorker(t, handler, time.Minute)
	defer done()

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	if err := w.Process(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	p := posters.created[0]
	if p.Title != PlaceholderTitle {
		t.Errorf("title = %q, want placeholder", p.Title)
	}
	if p.Description != PlaceholderDescription {
		t.Errorf("description = %q, want placeholder", p.Description)
	}
}

func TestWorkerProcessUpstreamFailure(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}
	w, jobs, posters, done := newTestWorker(t, handler, time.Minute)
	defer done()

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	if err := w.Process(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")}); err == nil {
		t.Fatal("Process returned nil for 503 upstream")
	}
	if got := jobs.status[jobID]; got != constants.JobStatusFailed {
		t.Errorf("job status = %s, want failed", got)
	}
	if jobs.errMsg[jobID] == "" {
		t.Error("failed job carries no error message")
	}
	if len(posters.created) != 0 {
		t.Errorf("posters created = %d, want none on failure", len(posters.created))
	}
}

func TestWorkerProcessInvalidResponse(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// creators must be an array of objects
		_, _ = w.Write([]byte(`{"creators": 42}`))
	}
	w, jobs, posters, done := newTestWorker(t, handler, time.Minute)
	defer done()

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	if err := w.Process(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")}); err == nil {
		t.Fatal("Process returned nil for schema-invalid response")
	}
	if got := jobs.errMsg[jobID]; got != "invalid data received from extraction API" {
		t.Errorf("error message = %q", got)
	}
	if len(posters.created) != 0 {
		t.Error("poster created despite invalid response")
	}
}

func TestWorkerProcessTimeout(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}
	w, jobs, _, done := newTestWorker(t, handler, 50*time.Millisecond)
	defer done()

	jobID := uuid.New()
	jobs.status[jobID] = constants.JobStatusPending
	if err := w.Process(context.Background(), Task{JobID: jobID, UserID: uuid.New(), FileName: "p.pdf", Data: []byte("x")}); err == nil {
		t.Fatal("Process returned nil for timed-out upstream")
	}
	if got := jobs.errMsg[jobID]; got != "extraction request timed out" {
		t.Errorf("error message = %q, want timeout message", got)
	}
}
