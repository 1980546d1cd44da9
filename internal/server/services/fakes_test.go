package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/config"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
	accountsrepo "github.com/rangoamigo/rangoamigo/internal/server/repositories/accounts"
	listingsrepo "github.com/rangoamigo/rangoamigo/internal/server/repositories/listings"
	sessionsrepo "github.com/rangoamigo/rangoamigo/internal/server/repositories/sessions"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newAccountService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *AccountService {
	t.Helper()
	cfg := &config.Config{SessionTTL: time.Hour}
	return NewAccountService(db, rm, cfg)
}

// --- fake repositories ---

type fakeAccountsRepo struct {
	lastCreated *models.Account
	createID    int64
	createErr   error

	byEmailOut *models.Account
	byEmailErr error

	byIDOut *models.Account
	byIDErr error
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreated = a
	a.ID = f.createID
	return a, nil
}

func (f *fakeAccountsRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeAccountsRepo) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeListingsRepo struct {
	inserted  *models.Listing
	insertID  int64
	insertErr error

	activeOut []models.Listing
	activeErr error

	ownerOut    []models.Listing
	ownerErr    error
	lastOwnerID int64

	getOut *models.Listing
	getErr error

	setArchivedCalls []bool
	setArchivedErr   error

	deletedIDs []int64
	deleteErr  error
}

func (f *fakeListingsRepo) Insert(ctx context.Context, l *models.Listing) (*models.Listing, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = l
	l.ID = f.insertID
	return l, nil
}

func (f *fakeListingsRepo) ListActive(ctx context.Context) ([]models.Listing, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.activeOut, nil
}

func (f *fakeListingsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	f.lastOwnerID = ownerID
	if f.ownerErr != nil {
		return nil, f.ownerErr
	}
	return f.ownerOut, nil
}

func (f *fakeListingsRepo) Get(ctx context.Context, id int64) (*models.Listing, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeListingsRepo) SetArchived(ctx context.Context, id int64, archived bool) error {
	if f.setArchivedErr != nil {
		return f.setArchivedErr
	}
	f.setArchivedCalls = append(f.setArchivedCalls, archived)
	return nil
}

func (f *fakeListingsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeSessionsRepo struct {
	createdFor   []int64
	createdToken string
	createErr    error

	findOut *models.Session
	findErr error

	deleted []string
	delErr  error
}

func (f *fakeSessionsRepo) Create(ctx context.Context, accountID int64, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdFor = append(f.createdFor, accountID)
	f.createdToken = token
	return nil
}

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeRepoManager struct {
	a *fakeAccountsRepo
	l *fakeListingsRepo
	s *fakeSessionsRepo
}

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository { return m.a }
func (m *fakeRepoManager) Listings(db dbx.DBTX) listingsrepo.Repository { return m.l }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository { return m.s }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
