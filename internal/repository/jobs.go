package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/gen/ent"
	entjob "github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/entity"
)

// ExtractionJobRepository owns the lifecycle of extraction_job rows. Status
// transitions are monotonic forward; updates are guarded so a terminal row
// can never move again.
type ExtractionJobRepository interface {
	Create(ctx context.Context, userID uuid.UUID) (*entity.ExtractionJob, error)
	Get(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionJob, error)
	MarkProcessing(ctx context.Context, jobID uuid.UUID) error
	Complete(ctx context.Context, jobID, posterID uuid.UUID) error
	Fail(ctx context.Context, jobID uuid.UUID, message string) error
	// ResetStuckProcessing fails processing rows older than maxAge. Run at
	// startup so a crash mid-extraction does not leave jobs processing forever.
	ResetStuckProcessing(ctx context.Context, maxAge time.Duration) (int, error)
}

type extractionJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionJobRepository(entc *ent.Client, log *slog.Logger) ExtractionJobRepository {
	return &extractionJobRepo{ent: entc, log: log}
}

func (r *extractionJobRepo) Create(ctx context.Context, userID uuid.UUID) (*entity.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		Create().
		SetUserID(userID).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job create failed", "user_id", userID, "err", err)
		return nil, err
	}
	r.log.Info("extraction_job created", "job_id", job.ID, "user_id", userID)
	return toEntityJob(job), nil
}

func (r *extractionJobRepo) Get(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "extraction job")
		}
		return nil, err
	}
	return toEntityJob(job), nil
}

func (r *extractionJobRepo) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	return r.transition(ctx, jobID, constants.JobStatusProcessing, func(u *ent.ExtractionJobUpdate) {})
}

func (r *extractionJobRepo) Complete(ctx context.Context, jobID, posterID uuid.UUID) error {
	return r.transition(ctx, jobID, constants.JobStatusCompleted, func(u *ent.ExtractionJobUpdate) {
		u.SetPosterID(posterID)
	})
}

func (r *extractionJobRepo) Fail(ctx context.Context, jobID uuid.UUID, message string) error {
	err := r.transition(ctx, jobID, constants.JobStatusFailed, func(u *ent.ExtractionJobUpdate) {
		u.SetErrorMessage(message)
	})
	if err == nil {
		r.log.Warn("extraction_job failed", "job_id", jobID, "error", message)
	}
	return err
}

// transition updates the row only when its current status may legally move to
// next; the WHERE clause enforces the monotonic state machine at the database
// so concurrent writers cannot resurrect a terminal job.
func (r *extractionJobRepo) transition(ctx context.Context, jobID uuid.UUID, next constants.JobStatus, apply func(*ent.ExtractionJobUpdate)) error {
	var from []string
	for _, s := range []constants.JobStatus{constants.JobStatusPending, constants.JobStatusProcessing} {
		if s.CanTransition(next) {
			from = append(from, string(s))
		}
	}

	u := r.ent.ExtractionJob.Update().
		Where(entjob.ID(jobID), entjob.StatusIn(from...)).
		SetStatus(string(next))
	apply(u)

	n, err := u.Save(ctx)
	if err != nil {
		r.log.Error("extraction_job transition failed", "job_id", jobID, "to", next, "err", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("ILLEGAL_TRANSITION", "job is not in a state that allows "+string(next), common.ErrInvalidInput)
	}
	return nil
}

func (r *extractionJobRepo) ResetStuckProcessing(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := r.ent.ExtractionJob.Update().
		Where(
			entjob.Status(string(constants.JobStatusProcessing)),
			entjob.UpdatedAtLT(cutoff),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage("extraction interrupted by service restart").
		Save(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.log.Warn("reset stuck processing jobs", "count", n, "older_than", maxAge.String())
	}
	return n, nil
}
