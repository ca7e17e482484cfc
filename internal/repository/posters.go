package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/gen/ent"
	entposter "github.com/posters-science/poster-tracker/gen/ent/poster"
	entmeta "github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/entity"
)

type PosterRepository interface {
	// CreateWithMetadata persists the poster and its metadata as one unit.
	// Either both rows exist afterwards or neither does.
	CreateWithMetadata(ctx context.Context, userID uuid.UUID, title, description, imageURL string, meta *entity.PosterMetadata) (*entity.Poster, error)
	GetWithMetadata(ctx context.Context, posterID uuid.UUID) (*entity.Poster, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Poster, error)
	UpdateMetadata(ctx context.Context, posterID uuid.UUID, title, description string, meta *entity.PosterMetadata) error
	MarkPublished(ctx context.Context, posterID uuid.UUID, doi string) error
}

type posterRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPosterRepository(entc *ent.Client, log *slog.Logger) PosterRepository {
	return &posterRepo{ent: entc, log: log}
}

func (r *posterRepo) CreateWithMetadata(ctx context.Context, userID uuid.UUID, title, description, imageURL string, meta *entity.PosterMetadata) (*entity.Poster, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	poster, err := tx.Poster.Create().
		SetUserID(userID).
		SetTitle(title).
		SetDescription(description).
		SetImageURL(imageURL).
		SetStatus(string(constants.PosterStatusDraft)).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create poster: %w", err))
	}

	row, err := metadataCreate(tx.PosterMetadata.Create(), meta).
		SetPosterID(poster.ID).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create poster metadata: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	r.log.Info("poster created", "poster_id", poster.ID, "user_id", userID, "title", title)
	out := toEntityPoster(poster)
	out.Metadata = toEntityMetadata(row)
	return out, nil
}

func (r *posterRepo) GetWithMetadata(ctx context.Context, posterID uuid.UUID) (*entity.Poster, error) {
	poster, err := r.ent.Poster.Query().
		Where(entposter.ID(posterID)).
		WithMetadata().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "poster")
		}
		return nil, err
	}
	out := toEntityPoster(poster)
	if poster.Edges.Metadata != nil {
		out.Metadata = toEntityMetadata(poster.Edges.Metadata)
	}
	return out, nil
}

func (r *posterRepo) List(ctx context.Context, userID uuid.UUID) ([]*entity.Poster, error) {
	rows, err := r.ent.Poster.Query().
		Where(entposter.UserID(userID)).
		WithMetadata().
		Order(ent.Desc(entposter.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("poster list failed", "user_id", userID, "err", err)
		return nil, err
	}
	out := make([]*entity.Poster, 0, len(rows))
	for _, p := range rows {
		poster := toEntityPoster(p)
		if p.Edges.Metadata != nil {
			poster.Metadata = toEntityMetadata(p.Edges.Metadata)
		}
		out = append(out, poster)
	}
	return out, nil
}

func (r *posterRepo) UpdateMetadata(ctx context.Context, posterID uuid.UUID, title, description string, meta *entity.PosterMetadata) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Poster.UpdateOneID(posterID).
		SetTitle(title).
		SetDescription(description).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, common.WrapError(common.ErrNotFound, "poster"))
		}
		return rollback(tx, fmt.Errorf("update poster: %w", err))
	}

	n, err := metadataUpdate(tx.PosterMetadata.Update().Where(entmeta.PosterID(posterID)), meta).Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("update poster metadata: %w", err))
	}
	if n == 0 {
		return rollback(tx, common.WrapError(common.ErrNotFound, "poster metadata"))
	}

	return tx.Commit()
}

func (r *posterRepo) MarkPublished(ctx context.Context, posterID uuid.UUID, doi string) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Poster.UpdateOneID(posterID).
		SetStatus(string(constants.PosterStatusPublished)).
		SetPublishedAt(time.Now()).
		Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("mark published: %w", err))
	}
	if doi != "" {
		if _, err := tx.PosterMetadata.Update().
			Where(entmeta.PosterID(posterID)).
			SetDoi(doi).
			Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("record doi: %w", err))
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("poster published", "poster_id", posterID, "doi", doi)
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
