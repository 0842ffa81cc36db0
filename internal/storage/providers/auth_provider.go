package providers

import (
	"context"
	"errors"

	"churchapp/internal/domains"
	"churchapp/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, full_name, email, role, passhash, created_at`

type AuthProvider struct {
	db *pgxpool.Pool
}

func NewAuthProvider(pg *pgxpool.Pool) *AuthProvider {
	return &AuthProvider{
		db: pg,
	}
}

func (s *AuthProvider) SaveUser(ctx context.Context, passHash string, account domains.AccountRegister) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (full_name, email, role, passhash, created_at)
         VALUES ($1, $2, $3, $4, NOW())`,
		account.FullName, account.Email, "ADMIN", passHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrUserExist
		}
		return err
	}
	return tx.Commit(ctx)
}

func (s *AuthProvider) GetUserByEmail(ctx context.Context, email string) (domains.Account, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+accountColumns+`
         FROM accounts
         WHERE email = $1`, email)
	if err != nil {
		return domains.Account{}, err
	}

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Account{}, storage.ErrNotFound
		}
		return domains.Account{}, err
	}
	return account, nil
}

func (s *AuthProvider) GetUserByID(ctx context.Context, id int64) (domains.Account, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+accountColumns+`
         FROM accounts
         WHERE id = $1`, id)
	if err != nil {
		return domains.Account{}, err
	}

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Account{}, storage.ErrNotFound
		}
		return domains.Account{}, err
	}
	return account, nil
}
