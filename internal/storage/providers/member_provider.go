package providers

import (
	"context"
	"errors"

	"churchapp/internal/domains"
	"churchapp/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memberColumns = `id, full_name, ministry, phone, email, created_at`

type MemberProvider struct {
	db *pgxpool.Pool
}

func NewMemberProvider(pg *pgxpool.Pool) *MemberProvider {
	return &MemberProvider{
		db: pg,
	}
}

func (s *MemberProvider) GetMemberByID(ctx context.Context, id int64) (domains.Member, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+memberColumns+`
         FROM members
         WHERE id = $1`, id)
	if err != nil {
		return domains.Member{}, err
	}

	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Member])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Member{}, storage.ErrNotFound
		}
		return domains.Member{}, err
	}
	return member, nil
}

func (s *MemberProvider) ListMembers(ctx context.Context) ([]domains.Member, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+memberColumns+`
         FROM members
         ORDER BY full_name`)
	if err != nil {
		return nil, err
	}

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Member])
	if err != nil {
		return nil, err
	}
	return members, nil
}
