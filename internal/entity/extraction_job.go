package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
)

// ExtractionJob tracks one upload-to-poster conversion. Rows are created when
// an upload is accepted and mutated only by the extraction worker.
type ExtractionJob struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Status       constants.JobStatus
	PosterID     *uuid.UUID
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
