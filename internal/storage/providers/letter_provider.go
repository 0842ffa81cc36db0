package providers

import (
	"context"

	"churchapp/internal/domains"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const letterColumns = `id, template_name, member_name, content, generated_by, created_at`

type LetterProvider struct {
	db *pgxpool.Pool
}

func NewLetterProvider(pg *pgxpool.Pool) *LetterProvider {
	return &LetterProvider{
		db: pg,
	}
}

// SaveGeneratedLetter appends one letter to the ledger. There is no update or
// delete counterpart, generated letters are audit artifacts.
func (s *LetterProvider) SaveGeneratedLetter(ctx context.Context, letter domains.GeneratedLetter) (domains.GeneratedLetter, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.GeneratedLetter{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`INSERT INTO generated_letters (id, template_name, member_name, content, generated_by, created_at)
         VALUES ($1, $2, $3, $4, $5, NOW())
         RETURNING `+letterColumns,
		uuid.New().String(), letter.TemplateName, letter.MemberName, letter.Content, letter.GeneratedBy)
	if err != nil {
		return domains.GeneratedLetter{}, err
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.GeneratedLetter])
	if err != nil {
		return domains.GeneratedLetter{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.GeneratedLetter{}, err
	}
	return saved, nil
}

func (s *LetterProvider) ListGeneratedLetters(ctx context.Context) ([]domains.GeneratedLetter, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+letterColumns+`
         FROM generated_letters
         ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	generated, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.GeneratedLetter])
	if err != nil {
		return nil, err
	}
	return generated, nil
}
