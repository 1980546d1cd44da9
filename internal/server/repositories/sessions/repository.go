// Package sessions stores the server-side rows behind opaque session
// tokens, so a logged-out or expired token stops resolving immediately.
package sessions

import (
	"context"
	"time"

	"github.com/rangoamigo/rangoamigo/internal/server/models"
)

type Repository interface {
	// Create inserts a session for accountID expiring at now+validity.
	Create(ctx context.Context, accountID int64, token string, validity time.Duration) error

	// Find returns the session row for token, or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
}
