package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/repository"
)

const maxErrorMessageLen = 500

// Task is one queued extraction: the raw uploaded bytes plus the job they
// are attributed to.
type Task struct {
	JobID       uuid.UUID
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
}

// Worker turns uploaded bytes into a persisted poster and metadata record,
// advancing the owning job as it goes. It is the only mutator of a job row
// after creation.
type Worker struct {
	Jobs    repository.ExtractionJobRepository
	Posters repository.PosterRepository
	Client  *Client
	Logger  *slog.Logger
}

func NewWorker(jobs repository.ExtractionJobRepository, posters repository.PosterRepository, client *Client, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{Jobs: jobs, Posters: posters, Client: client, Logger: logger}
}

// Process runs one extraction end to end. Failures terminate the job as
// failed with a diagnostic message; no poster row is written on any failure
// path. Network timeouts are reported distinctly but not retried — the
// caller re-uploads to retry.
func (w *Worker) Process(ctx context.Context, t Task) error {
	if err := w.Jobs.MarkProcessing(ctx, t.JobID); err != nil {
		w.Logger.Error("extraction.job.mark_processing_failed", "job_id", t.JobID, "err", err)
		return err
	}

	raw, status, err := w.Client.Extract(ctx, t.FileName, t.ContentType, t.Data)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			msg = "extraction request timed out"
		}
		w.Logger.Error("extraction.job.upstream_failed", "job_id", t.JobID, "status", status, "err", err)
		return w.fail(ctx, t.JobID, msg)
	}

	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), raw); err != nil {
		w.Logger.Error("extraction.job.invalid_response", "job_id", t.JobID, "err", err)
		return w.fail(ctx, t.JobID, "invalid data received from extraction API")
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		w.Logger.Error("extraction.job.decode_failed", "job_id", t.JobID, "err", err)
		return w.fail(ctx, t.JobID, "invalid data received from extraction API")
	}

	title, description, meta := MapToRecord(&resp)
	imageURL := placeholderImageURL(t.JobID)

	poster, err := w.Posters.CreateWithMetadata(ctx, t.UserID, title, description, imageURL, meta)
	if err != nil {
		w.Logger.Error("extraction.job.persist_failed", "job_id", t.JobID, "err", err)
		return w.fail(ctx, t.JobID, fmt.Sprintf("failed to save poster: %v", err))
	}

	if err := w.Jobs.Complete(ctx, t.JobID, poster.ID); err != nil {
		w.Logger.Error("extraction.job.complete_failed", "job_id", t.JobID, "err", err)
		return err
	}

	w.Logger.Info("extraction.job.completed", "job_id", t.JobID, "poster_id", poster.ID, "title", title)
	return nil
}

func (w *Worker) fail(ctx context.Context, jobID uuid.UUID, message string) error {
	if err := w.Jobs.Fail(ctx, jobID, truncate(message, maxErrorMessageLen)); err != nil {
		w.Logger.Error("extraction.job.fail_write_failed", "job_id", jobID, "err", err)
		return err
	}
	return fmt.Errorf("extraction job %s failed: %s", jobID, message)
}

// placeholderImageURL assigns a deterministic placeholder display image until
// real thumbnail generation exists.
func placeholderImageURL(seed uuid.UUID) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", seed)
}
