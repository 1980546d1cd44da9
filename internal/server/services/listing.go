package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rangoamigo/rangoamigo/internal/common"
	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/listings"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/repomanager"
)

// ListingService implements the listing lifecycle: create, list, archive,
// restore and delete. Every mutation of an existing listing goes through the
// ownership gate first.
type ListingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewListingService(db *sql.DB, m repomanager.RepositoryManager) *ListingService {
	return &ListingService{
		db:          db,
		repomanager: m,
	}
}

// CreateListingInput carries the creation form. Pointer fields distinguish
// "absent" from zero values; the address block is optional throughout.
type CreateListingInput struct {
	NomeLocal       string
	Itens           string
	HorarioRetirada string
	Latitude        *float64
	Longitude       *float64

	Cep    *string
	Rua    *string
	Numero *string
	Bairro *string
	Cidade *string
}

func (in *CreateListingInput) validate() error {
	switch {
	case in.NomeLocal == "":
		return fmt.Errorf("%w: campo obrigatório: nome_local", common.ErrorValidation)
	case in.Itens == "":
		return fmt.Errorf("%w: campo obrigatório: itens", common.ErrorValidation)
	case in.HorarioRetirada == "":
		return fmt.Errorf("%w: campo obrigatório: horario_retirada", common.ErrorValidation)
	case in.Latitude == nil:
		return fmt.Errorf("%w: campo obrigatório: latitude", common.ErrorValidation)
	case in.Longitude == nil:
		return fmt.Errorf("%w: campo obrigatório: longitude", common.ErrorValidation)
	}
	return nil
}

// Create persists a new active listing owned by owner. Any authenticated
// account may create; ownership is fixed here and never changes.
func (s *ListingService) Create(ctx context.Context, owner *models.Account, in CreateListingInput) (*models.Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	listing := &models.Listing{
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
		AccountID:       owner.ID,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		listing, err = s.repomanager.Listings(tx).Insert(ctx, listing)
		return err
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	listing.AuthorName = owner.DisplayName
	return listing, nil
}

// ListActive returns the listings shown on the public map: non-archived,
// insertion order, author name included.
func (s *ListingService) ListActive(ctx context.Context) ([]models.Listing, error) {
	list, err := s.repomanager.Listings(s.db).ListActive(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// ListMine returns every listing owned by ownerID, archived ones sorted
// after active ones, newest first within each group.
func (s *ListingService) ListMine(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	list, err := s.repomanager.Listings(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// authorize is the ownership gate shared by archive, restore and delete.
// Existence is checked before ownership, so an unknown id reads as NotFound
// for everyone.
func (s *ListingService) authorize(ctx context.Context, repo listings.Repository, ownerID, id int64) (*models.Listing, error) {
	listing, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.AccountID != ownerID {
		return nil, common.ErrorForbidden
	}
	return listing, nil
}

// Archive hides the listing from the public map. Owner only.
func (s *ListingService) Archive(ctx context.Context, ownerID, id int64) error {
	return s.setArchived(ctx, ownerID, id, true)
}

// Restore brings an archived listing back to the public map. Owner only.
func (s *ListingService) Restore(ctx context.Context, ownerID, id int64) error {
	return s.setArchived(ctx, ownerID, id, false)
}

func (s *ListingService) setArchived(ctx context.Context, ownerID, id int64, archived bool) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Listings(tx)
		if _, err := s.authorize(ctx, repo, ownerID, id); err != nil {
			return err
		}
		return repo.SetArchived(ctx, id, archived)
	})
}

// Delete permanently removes the listing. Owner only, and only while the
// listing is archived.
func (s *ListingService) Delete(ctx context.Context, ownerID, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Listings(tx)
		listing, err := s.authorize(ctx, repo, ownerID, id)
		if err != nil {
			return err
		}
		if !listing.Archived {
			return common.ErrorNotArchived
		}
		return repo.Delete(ctx, id)
	})
}
