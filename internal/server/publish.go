package server

import (
	"context"
	"encoding/json"
	"sync/atomic"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/publish"
)

// PublishPoster runs the archival publication workflow, streaming one
// progress event per step transition. Once started, the workflow runs to
// completion or failure server-side even if the client goes away: a remote
// deposition mid-transition cannot be safely abandoned, so only the stream
// writes stop on disconnect.
func (s *PosterService) PublishPoster(req *postersv1.PublishPosterRequest, stream postersv1.PostersService_PublishPosterServer) error {
	ctx := stream.Context()

	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return err
	}
	posterID, err := parseUUIDField("poster_id", req.GetPosterId())
	if err != nil {
		return err
	}
	mode := publish.Mode(req.GetMode())
	if mode == "" {
		mode = publish.ModeNew
	}
	if mode != publish.ModeNew && mode != publish.ModeExisting {
		return common.InvalidArgumentErrorf("mode must be %q or %q", publish.ModeNew, publish.ModeExisting)
	}
	if mode == publish.ModeExisting && req.GetExistingDepositionId() == 0 {
		return common.InvalidArgumentErrorf("existing_deposition_id is required for %q mode", publish.ModeExisting)
	}

	result, err := s.tokens.Validate(ctx, userID)
	if err != nil {
		s.logger.Error("publish.token_check_failed", "user_id", userID, "error", err)
		return common.InternalError("failed to check Zenodo connection")
	}
	if !result.Valid {
		return common.FailedPreconditionError("Invalid Zenodo token, please sign in again")
	}
	token, err := s.tokens.Token(ctx, userID)
	if err != nil {
		return common.FailedPreconditionError("Invalid Zenodo token, please sign in again")
	}

	// Stop writing once the client is gone, but never abort the workflow
	// because of it.
	var disconnected atomic.Bool
	emit := func(ev publish.Event) {
		if disconnected.Load() || ctx.Err() != nil {
			return
		}
		msg := &postersv1.PublishProgress{
			Step:    ev.Step,
			Status:  string(ev.Status),
			Message: ev.Message,
		}
		if ev.Data != nil {
			msg.DataJson, _ = json.Marshal(ev.Data)
		}
		if err := stream.Send(msg); err != nil {
			disconnected.Store(true)
			s.logger.Warn("publish.stream_closed", "poster_id", posterID, "error", err)
		}
	}

	runCtx := context.WithoutCancel(ctx)
	out, err := s.orch.Run(runCtx, publish.Request{
		PosterID:             posterID,
		UserID:               userID,
		Token:                token,
		Mode:                 mode,
		ExistingDepositionID: req.GetExistingDepositionId(),
	}, emit)
	if err != nil {
		// The failing step already produced its own error event; this one
		// terminates the stream protocol.
		emit(publish.Event{
			Step:    "error",
			Status:  publish.StatusError,
			Message: "Failed to publish to Zenodo: " + err.Error(),
		})
		return nil
	}

	emit(publish.Event{
		Step:    "complete",
		Status:  publish.StatusCompleted,
		Message: "Successfully published to Zenodo!",
		Data: map[string]any{
			"doi":       out.DOI,
			"recordId":  out.RecordID,
			"recordUrl": out.RecordURL,
		},
	})
	return nil
}
