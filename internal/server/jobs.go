package server

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/extraction"
	"github.com/posters-science/poster-tracker/internal/utils"
)

// UploadPoster accepts the raw poster document, records an extraction job,
// and hands the bytes to the worker queue. The call returns as soon as the
// job row exists; extraction happens detached from this request.
func (s *PosterService) UploadPoster(ctx context.Context, req *postersv1.UploadPosterRequest) (*postersv1.UploadPosterResponse, error) {
	v := common.NewValidator().
		Field("file_name", req.GetFileName(), common.Required).
		Field("data", req.GetData(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.Create(ctx, userID)
	if err != nil {
		s.logger.Error("upload.job_create_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to create extraction job")
	}

	task := extraction.Task{
		JobID:       job.ID,
		UserID:      userID,
		FileName:    req.GetFileName(),
		ContentType: req.GetContentType(),
		Data:        req.GetData(),
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		s.logger.Error("upload.enqueue_failed", "job_id", job.ID, "error", err)
		if failErr := s.jobs.Fail(ctx, job.ID, "extraction queue is full"); failErr != nil {
			s.logger.Error("upload.job_fail_failed", "job_id", job.ID, "error", failErr)
		}
		return nil, status.Error(codes.ResourceExhausted, "extraction queue is full, try again later")
	}

	s.logger.Info("upload.accepted", "job_id", job.ID, "user_id", userID, "file_name", req.GetFileName())
	return &postersv1.UploadPosterResponse{JobId: job.ID.String()}, nil
}

// GetExtractionJob reports the current state of one extraction job. Clients
// poll this until the status is terminal.
func (s *PosterService) GetExtractionJob(ctx context.Context, req *postersv1.GetExtractionJobRequest) (*postersv1.GetExtractionJobResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	jobID, err := parseUUIDField("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("extraction job not found")
		}
		s.logger.Error("job.get_failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("failed to load extraction job")
	}
	if job.UserID != userID {
		return nil, common.PermissionDeniedError("extraction job does not belong to the requesting user")
	}

	return utils.ToPBJob(job), nil
}
