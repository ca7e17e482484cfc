// Package server exposes the poster tracker over gRPC, plus the small HTTP
// surface needed for the OAuth redirect callback.
package server

import (
	"log/slog"

	"github.com/google/uuid"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/export"
	"github.com/posters-science/poster-tracker/internal/extraction"
	"github.com/posters-science/poster-tracker/internal/publish"
	"github.com/posters-science/poster-tracker/internal/repository"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

type PosterService struct {
	postersv1.UnimplementedPostersServiceServer
	jobs    repository.ExtractionJobRepository
	posters repository.PosterRepository
	queue   *extraction.Queue
	export  *export.Service
	tokens  *zenodo.TokenService
	oauth   *zenodo.OAuth
	orch    *publish.Orchestrator
	cfg     *common.Config
	logger  *slog.Logger
}

func NewPosterService(
	jobs repository.ExtractionJobRepository,
	posters repository.PosterRepository,
	queue *extraction.Queue,
	exportSvc *export.Service,
	tokens *zenodo.TokenService,
	oauth *zenodo.OAuth,
	orch *publish.Orchestrator,
	cfg *common.Config,
	logger *slog.Logger,
) *PosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PosterService{
		jobs:    jobs,
		posters: posters,
		queue:   queue,
		export:  exportSvc,
		tokens:  tokens,
		oauth:   oauth,
		orch:    orch,
		cfg:     cfg,
		logger:  logger,
	}
}

// parseUUIDField validates a request field as a UUID and converts it.
func parseUUIDField(name, value string) (uuid.UUID, error) {
	v := common.NewValidator().Field(name, value, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a valid UUID", name)
	}
	return id, nil
}
