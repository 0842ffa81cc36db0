package service

import (
	"context"
	"log/slog"
	"time"

	"churchapp/internal/domains"
	"churchapp/internal/letters"
)

type LetterService struct {
	provider  LetterProvider
	templates TemplateProvider
	members   MemberProvider
	churches  ChurchProvider
	now       func() time.Time
}

type LetterProvider interface {
	SaveGeneratedLetter(ctx context.Context, letter domains.GeneratedLetter) (domains.GeneratedLetter, error)
	ListGeneratedLetters(ctx context.Context) ([]domains.GeneratedLetter, error)
}

type MemberProvider interface {
	GetMemberByID(ctx context.Context, id int64) (domains.Member, error)
	ListMembers(ctx context.Context) ([]domains.Member, error)
}

type ChurchProvider interface {
	GetChurch(ctx context.Context) (domains.Church, error)
	UpdateChurch(ctx context.Context, church domains.Church) (domains.Church, error)
}

func NewLetterService(provider LetterProvider, templates TemplateProvider, members MemberProvider, churches ChurchProvider) *LetterService {
	return &LetterService{
		provider:  provider,
		templates: templates,
		members:   members,
		churches:  churches,
		now:       time.Now,
	}
}

// GenerateLetter resolves the template's variables against the member and the
// church profile, renders the content and appends the result to the ledger.
func (h *LetterService) GenerateLetter(ctx context.Context, payload domains.LetterGenerate, generatedBy string) (domains.GeneratedLetter, error) {
	template, err := h.templates.GetTemplateByID(ctx, payload.TemplateID)
	if err != nil {
		slog.Error("GenerateLetter load template failed", "err", err, "template_id", payload.TemplateID)
		return domains.GeneratedLetter{}, err
	}

	member, err := h.members.GetMemberByID(ctx, payload.MemberID)
	if err != nil {
		slog.Error("GenerateLetter load member failed", "err", err, "member_id", payload.MemberID)
		return domains.GeneratedLetter{}, err
	}

	church, err := h.churches.GetChurch(ctx)
	if err != nil {
		slog.Error("GenerateLetter load church failed", "err", err)
		return domains.GeneratedLetter{}, err
	}

	values := letters.Resolve(template.Variables, letters.ResolveContext{
		Member: member,
		Church: church,
		Now:    h.now(),
	})

	letter := domains.GeneratedLetter{
		TemplateName: template.Name,
		MemberName:   member.FullName,
		Content:      letters.Render(template.Content, values),
		GeneratedBy:  generatedBy,
	}

	saved, err := h.provider.SaveGeneratedLetter(ctx, letter)
	if err != nil {
		slog.Error("Save generated letter error", "err", err)
		return domains.GeneratedLetter{}, err
	}
	return saved, nil
}

func (h *LetterService) ListGeneratedLetters(ctx context.Context) ([]domains.GeneratedLetter, error) {
	generated, err := h.provider.ListGeneratedLetters(ctx)
	if err != nil {
		slog.Error("List generated letters error", "err", err)
		return nil, err
	}
	return generated, nil
}
