package httpapi

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/rangoamigo/rangoamigo/internal/common"
	"github.com/rangoamigo/rangoamigo/internal/logging"
	"github.com/rangoamigo/rangoamigo/internal/server/config"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
	"github.com/rangoamigo/rangoamigo/internal/server/services"
)

// fakeAccounts is an in-memory AccountService. It reproduces the service
// error contract closely enough to drive the HTTP layer.
type fakeAccounts struct {
	nextID    int64
	accounts  map[string]*models.Account
	passwords map[string]string
	sessions  map[string]*models.Account
	tokens    int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		nextID:    1,
		accounts:  map[string]*models.Account{},
		passwords: map[string]string{},
		sessions:  map[string]*models.Account{},
	}
}

func (f *fakeAccounts) Register(_ context.Context, email, displayName, password, confirmPassword string) (*models.Account, error) {
	if email == "" || displayName == "" || password == "" {
		return nil, fmt.Errorf("%w: campo obrigatório", common.ErrorValidation)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: as senhas não conferem", common.ErrorValidation)
	}
	if _, ok := f.accounts[email]; ok {
		return nil, common.ErrorDuplicateEmail
	}
	account := &models.Account{ID: f.nextID, Email: email, DisplayName: displayName}
	f.nextID++
	f.accounts[email] = account
	f.passwords[email] = password
	return account, nil
}

func (f *fakeAccounts) Login(_ context.Context, email, password string) (string, *models.Account, error) {
	account, ok := f.accounts[email]
	if !ok || f.passwords[email] != password {
		return "", nil, common.ErrorInvalidCredentials
	}
	f.tokens++
	token := fmt.Sprintf("token-%d", f.tokens)
	f.sessions[token] = account
	return token, account, nil
}

func (f *fakeAccounts) Logout(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeAccounts) Resolve(_ context.Context, token string) (*models.Account, error) {
	account, ok := f.sessions[token]
	if !ok {
		return nil, common.ErrorUnauthenticated
	}
	return account, nil
}

// fakeListings is an in-memory ListingService. Setting err makes every
// call fail with it.
type fakeListings struct {
	nextID   int64
	listings map[int64]*models.Listing
	err      error
}

func newFakeListings() *fakeListings {
	return &fakeListings{nextID: 1, listings: map[int64]*models.Listing{}}
}

func (f *fakeListings) Create(_ context.Context, owner *models.Account, in services.CreateListingInput) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.NomeLocal == "" || in.Itens == "" || in.HorarioRetirada == "" || in.Latitude == nil || in.Longitude == nil {
		return nil, fmt.Errorf("%w: campo obrigatório", common.ErrorValidation)
	}
	listing := &models.Listing{
		ID:              f.nextID,
		AccountID:       owner.ID,
		AuthorName:      owner.DisplayName,
		NomeLocal:       in.NomeLocal,
		Itens:           in.Itens,
		HorarioRetirada: in.HorarioRetirada,
		Latitude:        *in.Latitude,
		Longitude:       *in.Longitude,
		Cep:             in.Cep,
		Rua:             in.Rua,
		Numero:          in.Numero,
		Bairro:          in.Bairro,
		Cidade:          in.Cidade,
	}
	f.nextID++
	f.listings[listing.ID] = listing
	return listing, nil
}

func (f *fakeListings) ListActive(_ context.Context) ([]models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := []models.Listing{}
	for id := int64(1); id < f.nextID; id++ {
		if l, ok := f.listings[id]; ok && !l.Archived {
			items = append(items, *l)
		}
	}
	return items, nil
}

func (f *fakeListings) ListMine(_ context.Context, ownerID int64) ([]models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := []models.Listing{}
	for id := int64(1); id < f.nextID; id++ {
		if l, ok := f.listings[id]; ok && l.AccountID == ownerID {
			items = append(items, *l)
		}
	}
	return items, nil
}

func (f *fakeListings) get(ownerID, id int64) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	listing, ok := f.listings[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if listing.AccountID != ownerID {
		return nil, common.ErrorForbidden
	}
	return listing, nil
}

func (f *fakeListings) Archive(_ context.Context, ownerID, id int64) error {
	listing, err := f.get(ownerID, id)
	if err != nil {
		return err
	}
	listing.Archived = true
	return nil
}

func (f *fakeListings) Restore(_ context.Context, ownerID, id int64) error {
	listing, err := f.get(ownerID, id)
	if err != nil {
		return err
	}
	listing.Archived = false
	return nil
}

func (f *fakeListings) Delete(_ context.Context, ownerID, id int64) error {
	listing, err := f.get(ownerID, id)
	if err != nil {
		return err
	}
	if !listing.Archived {
		return common.ErrorNotArchived
	}
	delete(f.listings, id)
	return nil
}

func newTestServer(t *testing.T) (*Server, *fakeAccounts, *fakeListings) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewJSON(io.Discard)
	accounts := newFakeAccounts()
	listings := newFakeListings()
	return NewServer(log, accounts, listings, cfg), accounts, listings
}
