// Package repomanager wires repository constructors to a concrete store and
// owns schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/accounts"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/listings"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/sessions"
)

// RepositoryManager vends repositories bound to the provided DBTX, so a
// service can hand the same repository a *sql.DB or an open transaction.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Listings(db dbx.DBTX) listings.Repository
	Sessions(db dbx.DBTX) sessions.Repository

	// RunMigrations brings the schema up to date on the given connection.
	RunMigrations(ctx context.Context, db *sql.DB) error
}
