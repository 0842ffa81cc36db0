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

const templateColumns = `id, name, category, content, variables, created_by, created_at, updated_at`

type TemplateProvider struct {
	db *pgxpool.Pool
}

func NewTemplateProvider(pg *pgxpool.Pool) *TemplateProvider {
	return &TemplateProvider{
		db: pg,
	}
}

func (s *TemplateProvider) SaveTemplate(ctx context.Context, template domains.LetterTemplate) (domains.LetterTemplate, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.LetterTemplate{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`INSERT INTO letter_templates (name, category, content, variables, created_by, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
         RETURNING `+templateColumns,
		template.Name, template.Category, template.Content, template.Variables, template.CreatedBy)
	if err != nil {
		return domains.LetterTemplate{}, err
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.LetterTemplate])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domains.LetterTemplate{}, storage.ErrTemplateExists
		}
		return domains.LetterTemplate{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.LetterTemplate{}, err
	}
	return saved, nil
}

func (s *TemplateProvider) GetTemplateByID(ctx context.Context, id int64) (domains.LetterTemplate, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+templateColumns+`
         FROM letter_templates
         WHERE id = $1`, id)
	if err != nil {
		return domains.LetterTemplate{}, err
	}

	template, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.LetterTemplate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.LetterTemplate{}, storage.ErrNotFound
		}
		return domains.LetterTemplate{}, err
	}
	return template, nil
}

func (s *TemplateProvider) ListTemplates(ctx context.Context, filter domains.TemplateFilter) ([]domains.LetterTemplate, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+templateColumns+`
         FROM letter_templates
         WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
           AND ($2 = '' OR category = $2)
         ORDER BY updated_at DESC`,
		filter.Search, filter.Category)
	if err != nil {
		return nil, err
	}

	templates, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.LetterTemplate])
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *TemplateProvider) UpdateTemplate(ctx context.Context, template domains.LetterTemplate) (domains.LetterTemplate, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.LetterTemplate{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`UPDATE letter_templates
         SET name = $1, category = $2, content = $3, variables = $4, updated_at = NOW()
         WHERE id = $5
         RETURNING `+templateColumns,
		template.Name, template.Category, template.Content, template.Variables, template.ID)
	if err != nil {
		return domains.LetterTemplate{}, err
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.LetterTemplate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.LetterTemplate{}, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domains.LetterTemplate{}, storage.ErrTemplateExists
		}
		return domains.LetterTemplate{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.LetterTemplate{}, err
	}
	return saved, nil
}

// DeleteTemplate removes the template only. Generated letters keep their
// snapshots, they reference the template by name copy, not by id.
func (s *TemplateProvider) DeleteTemplate(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM letter_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
