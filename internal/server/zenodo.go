package server

import (
	"context"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/utils"
)

// GetZenodoConnection reports whether the caller can publish right now and,
// when not, where to send them to sign in. The poster id rides through the
// OAuth state so the callback can route back to the right review page.
func (s *PosterService) GetZenodoConnection(ctx context.Context, req *postersv1.GetZenodoConnectionRequest) (*postersv1.GetZenodoConnectionResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	posterID, err := parseUUIDField("poster_id", req.GetPosterId())
	if err != nil {
		return nil, err
	}

	if !s.cfg.ZenodoConfigured() {
		return &postersv1.GetZenodoConnectionResponse{
			Connected: false,
			Message:   "Zenodo integration is not configured",
		}, nil
	}

	result, err := s.tokens.Validate(ctx, userID)
	if err != nil {
		s.logger.Error("zenodo.validate_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to check Zenodo connection")
	}

	resp := &postersv1.GetZenodoConnectionResponse{
		LoginUrl:  s.oauth.AuthorizeURL(oauthState(userID, posterID)),
		Connected: result.Valid,
		Message:   result.Message,
	}
	for _, d := range result.ExistingDepositions {
		resp.ExistingDepositions = append(resp.ExistingDepositions, utils.ToPBDeposition(d))
	}
	return resp, nil
}

func (s *PosterService) DisconnectZenodo(ctx context.Context, req *postersv1.DisconnectZenodoRequest) (*postersv1.DisconnectZenodoResponse, error) {
	userID, err := parseUUIDField("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Disconnect(ctx, userID); err != nil {
		s.logger.Error("zenodo.disconnect_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to disconnect Zenodo")
	}
	return &postersv1.DisconnectZenodoResponse{Success: true}, nil
}
