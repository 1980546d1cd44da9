package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/accounts"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/listings"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/migrations"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/sessions"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the RepositoryManager for the file-backed
// fallback store used when no DATABASE_DSN is configured.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// OpenSQLite opens (creating if needed) the SQLite file at path. Foreign
// keys are enforced per connection and writes are serialized through a
// single connection.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db)
}

func (m *SQLiteRepositoryManager) Listings(db dbx.DBTX) listings.Repository {
	return listings.NewSQLRepository(db)
}

func (m *SQLiteRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLRepository(db)
}

// RunMigrations points goose at the embedded SQLite migrations and applies
// them.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
