package providers

import (
	"context"
	"errors"

	"churchapp/internal/domains"
	"churchapp/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const churchColumns = `id, name, pastor_name, phone, address, city, logo_url, updated_at`

type ChurchProvider struct {
	db *pgxpool.Pool
}

func NewChurchProvider(pg *pgxpool.Pool) *ChurchProvider {
	return &ChurchProvider{
		db: pg,
	}
}

// GetChurch returns the organization profile. The app is single-tenant, the
// migrator seeds exactly one row.
func (s *ChurchProvider) GetChurch(ctx context.Context) (domains.Church, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+churchColumns+`
         FROM churches
         ORDER BY id
         LIMIT 1`)
	if err != nil {
		return domains.Church{}, err
	}

	church, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Church])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Church{}, storage.ErrNotFound
		}
		return domains.Church{}, err
	}
	return church, nil
}

func (s *ChurchProvider) UpdateChurch(ctx context.Context, church domains.Church) (domains.Church, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.Church{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`UPDATE churches
         SET name = $1, pastor_name = $2, phone = $3, address = $4, city = $5, logo_url = $6, updated_at = NOW()
         WHERE id = $7
         RETURNING `+churchColumns,
		church.Name, church.PastorName, church.Phone, church.Address, church.City, church.LogoUrl, church.ID)
	if err != nil {
		return domains.Church{}, err
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Church])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Church{}, storage.ErrNotFound
		}
		return domains.Church{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.Church{}, err
	}
	return saved, nil
}
