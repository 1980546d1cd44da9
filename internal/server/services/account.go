// Package services contains the server-side business logic. This file
// implements AccountService: registration, login/logout and session
// resolution.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rangoamigo/rangoamigo/internal/common"
	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/auth"
	"github.com/rangoamigo/rangoamigo/internal/server/config"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/repomanager"
)

// AccountService provides account and session operations:
//   - Register: create an account
//   - Login: verify credentials and mint an opaque session token
//   - Logout: invalidate a session token
//   - Resolve: map a token back to its account, or report Unauthenticated
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sessionTTL  time.Duration
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		sessionTTL:  cfg.SessionTTL,
	}
}

// Register validates the registration form, hashes the password and creates
// the account. A taken email surfaces as common.ErrorDuplicateEmail; the
// store's unique constraint decides, so two concurrent registrations of the
// same email produce exactly one success.
func (s *AccountService) Register(ctx context.Context, email, displayName, password, confirmPassword string) (*models.Account, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: campo obrigatório: email", common.ErrorValidation)
	}
	if displayName == "" {
		return nil, fmt.Errorf("%w: campo obrigatório: nome", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: campo obrigatório: senha", common.ErrorValidation)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: as senhas não conferem", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account, err = s.repomanager.Accounts(tx).Create(ctx, account)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the credentials and mints a new opaque session token bound
// to the account. Unknown email and wrong password return the identical
// error; the unknown-email path still performs a bcrypt comparison against a
// dummy hash so the two cannot be told apart by timing either.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, auth.DummyHash)
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Sessions(tx).Create(ctx, account.ID, token, s.sessionTTL)
	})
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, account, nil
}

// Logout invalidates the session token. Logging out twice, or with a token
// that never existed, is a no-op.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repomanager.Sessions(s.db).Delete(ctx, token); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Resolve maps a session token back to its account. An empty, unknown,
// tampered or expired token resolves to common.ErrorUnauthenticated, never
// to an internal error; expired rows are removed on sight.
func (s *AccountService) Resolve(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, common.ErrorUnauthenticated
	}

	sessionRepo := s.repomanager.Sessions(s.db)

	session, err := sessionRepo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = sessionRepo.Delete(ctx, token)
		return nil, common.ErrorUnauthenticated
	}

	account, err := s.repomanager.Accounts(s.db).FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}
