package zenodo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/repository"
)

// ValidationResult reports whether a stored token is usable and, when it is,
// the caller's existing depositions.
type ValidationResult struct {
	Valid               bool
	Message             string
	ExistingDepositions []DepositionSummary
}

// DepositionLister is the slice of the archival client that token validation
// needs.
type DepositionLister interface {
	ListDepositions(ctx context.Context, token string) ([]Deposition, error)
}

// Refresher exchanges a refresh token for a fresh pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// TokenService answers "can this user publish right now" by probing the
// archival API with the stored token. Tokens the remote rejects are deleted
// so the next attempt starts clean; tokens that pass are opportunistically
// refreshed.
type TokenService struct {
	tokens  repository.ZenodoTokenRepository
	lister  DepositionLister
	refresh Refresher
	logger  *slog.Logger
}

func NewTokenService(tokens repository.ZenodoTokenRepository, lister DepositionLister, refresh Refresher, logger *slog.Logger) *TokenService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenService{tokens: tokens, lister: lister, refresh: refresh, logger: logger}
}

// Token returns the stored access token for userID, or a not-found error.
func (s *TokenService) Token(ctx context.Context, userID uuid.UUID) (string, error) {
	tok, err := s.tokens.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Validate checks the stored token by listing the user's depositions. A
// missing token short-circuits without a remote call. A rejected token is
// deleted before reporting invalid.
func (s *TokenService) Validate(ctx context.Context, userID uuid.UUID) (*ValidationResult, error) {
	tok, err := s.tokens.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &ValidationResult{Valid: false, Message: "No Zenodo token found"}, nil
		}
		return nil, err
	}

	deps, err := s.lister.ListDepositions(ctx, tok.AccessToken)
	if err != nil {
		// Only a remote rejection condemns the token. A transport failure
		// says nothing about it, so the row stays and the error propagates.
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Status == 0 {
			s.logger.Warn("zenodo.token.probe_unreachable", "user_id", userID, "error", err)
			return nil, err
		}
		s.logger.Warn("zenodo.token.probe_failed", "user_id", userID, "status", opErr.Status, "error", err)
		if delErr := s.tokens.Delete(ctx, userID); delErr != nil {
			s.logger.Error("zenodo.token.cleanup_failed", "user_id", userID, "error", delErr)
		}
		return &ValidationResult{Valid: false, Message: "Zenodo token is invalid or expired"}, nil
	}

	// The token works; try to push its expiry out. Failure here is logged
	// and ignored, the current token stays usable.
	s.refreshStored(ctx, userID, tok.RefreshToken)

	summaries := make([]DepositionSummary, 0, len(deps))
	for _, d := range deps {
		summaries = append(summaries, DepositionSummary{
			ID:           d.ID,
			Title:        d.Title,
			State:        d.State,
			Submitted:    d.Submitted,
			ConceptRecID: d.ConceptRecID,
		})
	}
	return &ValidationResult{
		Valid:               true,
		Message:             "Zenodo token is valid",
		ExistingDepositions: summaries,
	}, nil
}

func (s *TokenService) refreshStored(ctx context.Context, userID uuid.UUID, refreshToken string) {
	if s.refresh == nil || refreshToken == "" {
		return
	}
	pair, err := s.refresh.Refresh(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("zenodo.token.refresh_failed", "user_id", userID, "error", err)
		return
	}
	if _, err := s.tokens.Upsert(ctx, userID, pair.AccessToken, pair.RefreshToken, pair.ExpiryTime(time.Now())); err != nil {
		s.logger.Error("zenodo.token.refresh_store_failed", "user_id", userID, "error", err)
		return
	}
	s.logger.Info("zenodo.token.refreshed", "user_id", userID)
}

// Disconnect forgets the user's stored token.
func (s *TokenService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.Delete(ctx, userID)
}
