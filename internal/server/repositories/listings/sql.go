package listings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rangoamigo/rangoamigo/internal/common"
	"github.com/rangoamigo/rangoamigo/internal/dbx"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
)

// SQLRepository implements Repository over dbx.DBTX. The SQL is portable
// between the Postgres and SQLite stores.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Insert(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	query := `
		INSERT INTO listings
			(nome_local, itens, horario_retirada, latitude, longitude,
			 cep, rua, numero, bairro, cidade, archived, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, $11, $12)
		RETURNING id
	`
	listing.Archived = false
	listing.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		listing.NomeLocal, listing.Itens, listing.HorarioRetirada,
		listing.Latitude, listing.Longitude,
		listing.Cep, listing.Rua, listing.Numero, listing.Bairro, listing.Cidade,
		listing.AccountID, listing.CreatedAt).Scan(&listing.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return listing, nil
}

// selectWithAuthor is the shared column list for reads that carry the
// owner's display name. The name is joined in, never stored on the row.
const selectWithAuthor = `
	SELECT l.id, l.nome_local, l.itens, l.horario_retirada,
	       l.latitude, l.longitude,
	       l.cep, l.rua, l.numero, l.bairro, l.cidade,
	       l.archived, l.account_id, a.display_name
	FROM listings l
	JOIN accounts a ON a.id = l.account_id
`

func (r *SQLRepository) ListActive(ctx context.Context) ([]models.Listing, error) {
	query := selectWithAuthor + `
		WHERE l.archived = FALSE
		ORDER BY l.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *SQLRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	query := selectWithAuthor + `
		WHERE l.account_id = $1
		ORDER BY l.archived ASC, l.id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]models.Listing, error) {
	list := make([]models.Listing, 0)

	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID, &l.NomeLocal, &l.Itens, &l.HorarioRetirada,
			&l.Latitude, &l.Longitude,
			&l.Cep, &l.Rua, &l.Numero, &l.Bairro, &l.Cidade,
			&l.Archived, &l.AccountID, &l.AuthorName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Listing, error) {
	query := `
		SELECT id, nome_local, itens, horario_retirada,
		       latitude, longitude,
		       cep, rua, numero, bairro, cidade,
		       archived, account_id
		FROM listings
		WHERE id = $1
	`
	l := &models.Listing{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.NomeLocal, &l.Itens, &l.HorarioRetirada,
		&l.Latitude, &l.Longitude,
		&l.Cep, &l.Rua, &l.Numero, &l.Bairro, &l.Cidade,
		&l.Archived, &l.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *SQLRepository) SetArchived(ctx context.Context, id int64, archived bool) error {
	query := `
		UPDATE listings
		SET archived = $1
		WHERE id = $2
	`
	res, err := r.db.ExecContext(ctx, query, archived, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM listings
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
