package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
)

// Poster is one uploaded poster and its display attributes. A poster is
// visible to its owner only until status becomes published.
type Poster struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Status      constants.PosterStatus
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time

	// Metadata is populated when loaded via GetWithMetadata.
	Metadata *PosterMetadata
}
