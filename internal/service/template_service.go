package service

import (
	"context"
	"log/slog"
	"strings"

	"churchapp/internal/domains"
	"churchapp/internal/letters"
)

type TemplateService struct {
	provider TemplateProvider
}

type TemplateProvider interface {
	SaveTemplate(ctx context.Context, template domains.LetterTemplate) (domains.LetterTemplate, error)
	GetTemplateByID(ctx context.Context, id int64) (domains.LetterTemplate, error)
	ListTemplates(ctx context.Context, filter domains.TemplateFilter) ([]domains.LetterTemplate, error)
	UpdateTemplate(ctx context.Context, template domains.LetterTemplate) (domains.LetterTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

func NewTemplateService(provider TemplateProvider) *TemplateService {
	return &TemplateService{
		provider: provider,
	}
}

func (h *TemplateService) CreateTemplate(ctx context.Context, payload domains.LetterTemplateCreate, userId int64) (domains.LetterTemplate, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return domains.LetterTemplate{}, ErrTemplateNameRequired
	}
	if strings.TrimSpace(payload.Content) == "" {
		return domains.LetterTemplate{}, ErrTemplateContentRequired
	}

	template := domains.LetterTemplate{
		Name:      payload.Name,
		Category:  payload.Category,
		Content:   payload.Content,
		Variables: letters.Variables(payload.Content),
		CreatedBy: userId,
	}

	saved, err := h.provider.SaveTemplate(ctx, template)
	if err != nil {
		slog.Error("Save template error", "err", err)
		return domains.LetterTemplate{}, err
	}
	return saved, nil
}

func (h *TemplateService) ListTemplates(ctx context.Context, filter domains.TemplateFilter) ([]domains.LetterTemplate, error) {
	templates, err := h.provider.ListTemplates(ctx, filter)
	if err != nil {
		slog.Error("List templates error", "err", err)
		return nil, err
	}
	return templates, nil
}

// UpdateTemplate merges the partial payload into the stored template. Variables
// are re-derived whenever content changes, they are never edited directly.
func (h *TemplateService) UpdateTemplate(ctx context.Context, templateId int64, payload domains.LetterTemplateUpdate) (domains.LetterTemplate, error) {
	template, err := h.provider.GetTemplateByID(ctx, templateId)
	if err != nil {
		return domains.LetterTemplate{}, err
	}

	if payload.Name != nil {
		if strings.TrimSpace(*payload.Name) == "" {
			return domains.LetterTemplate{}, ErrTemplateNameRequired
		}
		template.Name = *payload.Name
	}
	if payload.Category != nil {
		template.Category = *payload.Category
	}
	if payload.Content != nil {
		if strings.TrimSpace(*payload.Content) == "" {
			return domains.LetterTemplate{}, ErrTemplateContentRequired
		}
		template.Content = *payload.Content
		template.Variables = letters.Variables(*payload.Content)
	}

	saved, err := h.provider.UpdateTemplate(ctx, template)
	if err != nil {
		slog.Error("Update template error", "err", err, "template_id", templateId)
		return domains.LetterTemplate{}, err
	}
	return saved, nil
}

func (h *TemplateService) DeleteTemplate(ctx context.Context, templateId int64) error {
	if err := h.provider.DeleteTemplate(ctx, templateId); err != nil {
		slog.Error("Delete template error", "err", err, "template_id", templateId)
		return err
	}
	return nil
}
