package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/entity"
	"github.com/posters-science/poster-tracker/internal/utils"
)

const maxTitleLength = 500

func (s *PosterService) GetPoster(ctx context.Context, req *postersv1.GetPosterRequest) (*postersv1.GetPosterResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	posterID, err := parseUUIDField("poster_id", req.GetPosterId())
	if err != nil {
		return nil, err
	}

	poster, err := s.posters.GetWithMetadata(ctx, posterID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("poster not found")
		}
		s.logger.Error("poster.get_failed", "poster_id", posterID, "error", err)
		return nil, common.InternalError("failed to load poster")
	}
	if poster.UserID != userID {
		return nil, common.PermissionDeniedError("poster does not belong to the requesting user")
	}

	return &postersv1.GetPosterResponse{Poster: utils.ToPBPoster(poster)}, nil
}

func (s *PosterService) ListPosters(ctx context.Context, req *postersv1.ListPostersRequest) (*postersv1.ListPostersResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	posters, err := s.posters.List(ctx, userID)
	if err != nil {
		s.logger.Error("poster.list_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to list posters")
	}

	out := make([]*postersv1.Poster, 0, len(posters))
	for _, p := range posters {
		out = append(out, utils.ToPBPoster(p))
	}
	return &postersv1.ListPostersResponse{Posters: out}, nil
}

// UpdatePosterMetadata replaces the poster's editable fields and its whole
// bibliographic record. Partial metadata updates are not supported; the
// client always sends the full document back.
func (s *PosterService) UpdatePosterMetadata(ctx context.Context, req *postersv1.UpdatePosterMetadataRequest) (*postersv1.UpdatePosterMetadataResponse, error) {
	v := common.NewValidator().
		Field("title", req.GetTitle(), common.Required, func(name string, value interface{}) *common.ValidationError {
			return common.MaxLength(name, value, maxTitleLength)
		}).
		Field("metadata_json", req.GetMetadataJson(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	posterID, err := parseUUIDField("poster_id", req.GetPosterId())
	if err != nil {
		return nil, err
	}

	var meta entity.PosterMetadata
	if err := json.Unmarshal(req.GetMetadataJson(), &meta); err != nil {
		return nil, common.InvalidArgumentErrorf("metadata_json is not valid JSON: %v", err)
	}

	existing, err := s.posters.GetWithMetadata(ctx, posterID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("poster not found")
		}
		s.logger.Error("poster.get_failed", "poster_id", posterID, "error", err)
		return nil, common.InternalError("failed to load poster")
	}
	if existing.UserID != userID {
		return nil, common.PermissionDeniedError("poster does not belong to the requesting user")
	}

	if err := s.posters.UpdateMetadata(ctx, posterID, req.GetTitle(), req.GetDescription(), &meta); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("poster metadata not found")
		}
		s.logger.Error("poster.update_failed", "poster_id", posterID, "error", err)
		return nil, common.InternalError("failed to update poster")
	}

	updated, err := s.posters.GetWithMetadata(ctx, posterID)
	if err != nil {
		s.logger.Error("poster.reload_failed", "poster_id", posterID, "error", err)
		return nil, common.InternalError("failed to reload poster")
	}
	s.logger.Info("poster.updated", "poster_id", posterID, "user_id", userID)
	return &postersv1.UpdatePosterMetadataResponse{Poster: utils.ToPBPoster(updated)}, nil
}

func (s *PosterService) ExportPosters(ctx context.Context, req *postersv1.ExportPostersRequest) (*postersv1.ExportPostersResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.export.ExportPostersXLSX(ctx, userID)
	if err != nil {
		s.logger.Error("export.failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to export posters")
	}

	name := "posters-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	return &postersv1.ExportPostersResponse{Xlsx: xlsx, FileName: name}, nil
}
