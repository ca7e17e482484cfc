package entity

import (
	"time"

	"github.com/google/uuid"
)

// ZenodoToken is the stored OAuth credential pair for one user. At most one
// row exists per user; known-bad tokens are deleted, never retained.
type ZenodoToken struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
