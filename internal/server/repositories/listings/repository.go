// Package listings provides the donation-listing store.
package listings

import (
	"context"

	"github.com/rangoamigo/rangoamigo/internal/server/models"
)

type Repository interface {
	// Insert persists the listing with archived = false and returns it with
	// its assigned id.
	Insert(ctx context.Context, listing *models.Listing) (*models.Listing, error)

	// ListActive returns non-archived listings in insertion order, with the
	// owner's display name joined in.
	ListActive(ctx context.Context) ([]models.Listing, error)

	// ListByOwner returns every listing owned by ownerID, active ones
	// first, newest first within each group.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error)

	// Get returns common.ErrorNotFound when the id is absent.
	Get(ctx context.Context, id int64) (*models.Listing, error)

	// SetArchived flips only the archived flag. Returns
	// common.ErrorNotFound when the id is absent.
	SetArchived(ctx context.Context, id int64, archived bool) error

	// Delete removes the row. Returns common.ErrorNotFound when the id is
	// absent.
	Delete(ctx context.Context, id int64) error
}
