// Package accounts provides the credential store: one row per registered
// account, created once and never updated.
package accounts

import (
	"context"

	"github.com/rangoamigo/rangoamigo/internal/server/models"
)

type Repository interface {
	// Create inserts the account and returns it with its assigned id.
	// A second account with the same email fails with
	// common.ErrorDuplicateEmail; the unique constraint decides, so
	// concurrent registrations race safely.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// FindByEmail looks an account up by exact email match (no
	// normalization). Returns common.ErrorNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// FindByID returns common.ErrorNotFound when absent.
	FindByID(ctx context.Context, id int64) (*models.Account, error)
}
