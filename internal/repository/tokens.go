package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/gen/ent"
	enttoken "github.com/posters-science/poster-tracker/gen/ent/zenodotoken"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/entity"
)

// ZenodoTokenRepository stores at most one OAuth credential pair per user.
type ZenodoTokenRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.ZenodoToken, error)
	Upsert(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) (*entity.ZenodoToken, error)
	// Delete removes the stored token. Idempotent: deleting an absent token
	// is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type zenodoTokenRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewZenodoTokenRepository(entc *ent.Client, log *slog.Logger) ZenodoTokenRepository {
	return &zenodoTokenRepo{ent: entc, log: log}
}

func (r *zenodoTokenRepo) Get(ctx context.Context, userID uuid.UUID) (*entity.ZenodoToken, error) {
	row, err := r.ent.ZenodoToken.Query().
		Where(enttoken.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "zenodo token")
		}
		return nil, err
	}
	return toEntityToken(row), nil
}

func (r *zenodoTokenRepo) Upsert(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) (*entity.ZenodoToken, error) {
	existing, err := r.ent.ZenodoToken.Query().
		Where(enttoken.UserID(userID)).
		Only(ctx)
	switch {
	case err == nil:
		row, err := existing.Update().
			SetAccessToken(accessToken).
			SetRefreshToken(refreshToken).
			SetExpiresAt(expiresAt).
			Save(ctx)
		if err != nil {
			r.log.Error("zenodo token update failed", "user_id", userID, "err", err)
			return nil, err
		}
		return toEntityToken(row), nil
	case ent.IsNotFound(err):
		row, err := r.ent.ZenodoToken.Create().
			SetUserID(userID).
			SetAccessToken(accessToken).
			SetRefreshToken(refreshToken).
			SetExpiresAt(expiresAt).
			Save(ctx)
		if err != nil {
			r.log.Error("zenodo token create failed", "user_id", userID, "err", err)
			return nil, err
		}
		r.log.Info("zenodo token stored", "user_id", userID)
		return toEntityToken(row), nil
	default:
		return nil, err
	}
}

func (r *zenodoTokenRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	n, err := r.ent.ZenodoToken.Delete().
		Where(enttoken.UserID(userID)).
		Exec(ctx)
	if err != nil {
		r.log.Error("zenodo token delete failed", "user_id", userID, "err", err)
		return err
	}
	if n > 0 {
		r.log.Info("zenodo token deleted", "user_id", userID)
	}
	return nil
}
