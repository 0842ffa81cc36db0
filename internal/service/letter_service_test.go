package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"churchapp/internal/domains"
	"churchapp/internal/storage"
)

type fakeLetterProvider struct {
	letters []domains.GeneratedLetter
}

func (f *fakeLetterProvider) SaveGeneratedLetter(_ context.Context, letter domains.GeneratedLetter) (domains.GeneratedLetter, error) {
	letter.ID = fmt.Sprintf("letter-%d", len(f.letters)+1)
	letter.CreatedAt = time.Now().Add(time.Duration(len(f.letters)) * time.Millisecond)
	f.letters = append(f.letters, letter)
	return letter, nil
}

func (f *fakeLetterProvider) ListGeneratedLetters(_ context.Context) ([]domains.GeneratedLetter, error) {
	out := make([]domains.GeneratedLetter, 0, len(f.letters))
	for i := len(f.letters) - 1; i >= 0; i-- {
		out = append(out, f.letters[i])
	}
	return out, nil
}

type fakeMemberProvider struct {
	members map[int64]domains.Member
}

func (f *fakeMemberProvider) GetMemberByID(_ context.Context, id int64) (domains.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return domains.Member{}, storage.ErrNotFound
	}
	return member, nil
}

func (f *fakeMemberProvider) ListMembers(_ context.Context) ([]domains.Member, error) {
	var out []domains.Member
	for _, member := range f.members {
		out = append(out, member)
	}
	return out, nil
}

type fakeChurchProvider struct {
	church domains.Church
}

func (f *fakeChurchProvider) GetChurch(_ context.Context) (domains.Church, error) {
	return f.church, nil
}

func (f *fakeChurchProvider) UpdateChurch(_ context.Context, church domains.Church) (domains.Church, error) {
	f.church = church
	return church, nil
}

func newLetterFixture(t *testing.T) (*LetterService, *TemplateService, *fakeLetterProvider) {
	t.Helper()

	templates := newFakeTemplateProvider()
	letterStore := &fakeLetterProvider{}
	members := &fakeMemberProvider{members: map[int64]domains.Member{
		1: {
			ID:       1,
			FullName: "Ana Torres",
			Ministry: strPtr("Alabanza"),
			Phone:    strPtr("555-0101"),
			Email:    strPtr("ana@example.com"),
		},
	}}
	churches := &fakeChurchProvider{church: domains.Church{
		ID:         1,
		Name:       "Iglesia Monte Sion",
		PastorName: strPtr("Juan Pérez"),
	}}

	svc := NewLetterService(letterStore, templates, members, churches)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 8, 10, 0, 0, 0, time.UTC)
	}
	return svc, NewTemplateService(templates), letterStore
}

func TestGenerateLetter(t *testing.T) {
	svc, templateSvc, _ := newLetterFixture(t)

	template, err := templateSvc.CreateTemplate(context.Background(), domains.LetterTemplateCreate{
		Name:     "Carta de bienvenida",
		Category: "bienvenida",
		Content:  "Estimado {{nombre}}, {{iglesia}} le da la bienvenida.\n{{pastor}}, {{fecha}}",
	}, 1)
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}

	letter, err := svc.GenerateLetter(context.Background(), domains.LetterGenerate{
		TemplateID: template.ID,
		MemberID:   1,
	}, "Secretaria López")
	if err != nil {
		t.Fatalf("GenerateLetter() error = %v", err)
	}

	wantContent := "Estimado Ana Torres, Iglesia Monte Sion le da la bienvenida.\nJuan Pérez, 8 de marzo de 2026"
	if letter.Content != wantContent {
		t.Errorf("Content = %q, want %q", letter.Content, wantContent)
	}
	if letter.TemplateName != "Carta de bienvenida" {
		t.Errorf("TemplateName = %q", letter.TemplateName)
	}
	if letter.MemberName != "Ana Torres" {
		t.Errorf("MemberName = %q", letter.MemberName)
	}
	if letter.GeneratedBy != "Secretaria López" {
		t.Errorf("GeneratedBy = %q", letter.GeneratedBy)
	}
	if letter.ID == "" {
		t.Error("ID must be assigned")
	}
}

func TestGenerateLetterUnknownTokenRendersEmpty(t *testing.T) {
	svc, templateSvc, _ := newLetterFixture(t)

	template, err := templateSvc.CreateTemplate(context.Background(), domains.LetterTemplateCreate{
		Name:    "Carta",
		Content: "Hola {{nombre}}, su cargo: {{cargo}}.",
	}, 1)
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}

	letter, err := svc.GenerateLetter(context.Background(), domains.LetterGenerate{TemplateID: template.ID, MemberID: 1}, "admin")
	if err != nil {
		t.Fatalf("GenerateLetter() error = %v", err)
	}
	if letter.Content != "Hola Ana Torres, su cargo: ." {
		t.Errorf("Content = %q", letter.Content)
	}
}

func TestGenerateLetterNotFound(t *testing.T) {
	svc, templateSvc, _ := newLetterFixture(t)

	template, err := templateSvc.CreateTemplate(context.Background(), domains.LetterTemplateCreate{
		Name:    "Carta",
		Content: "Hola {{nombre}}",
	}, 1)
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}

	if _, err := svc.GenerateLetter(context.Background(), domains.LetterGenerate{TemplateID: 99, MemberID: 1}, "admin"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown template: error = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := svc.GenerateLetter(context.Background(), domains.LetterGenerate{TemplateID: template.ID, MemberID: 99}, "admin"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown member: error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestGenerateLetterTwiceProducesIndependentEntries(t *testing.T) {
	svc, templateSvc, _ := newLetterFixture(t)

	template, err := templateSvc.CreateTemplate(context.Background(), domains.LetterTemplateCreate{
		Name:    "Carta",
		Content: "Hola {{nombre}}",
	}, 1)
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}

	payload := domains.LetterGenerate{TemplateID: template.ID, MemberID: 1}
	first, err := svc.GenerateLetter(context.Background(), payload, "admin")
	if err != nil {
		t.Fatalf("first GenerateLetter() error = %v", err)
	}
	second, err := svc.GenerateLetter(context.Background(), payload, "admin")
	if err != nil {
		t.Fatalf("second GenerateLetter() error = %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("both letters share id %q", first.ID)
	}
	if first.Content != second.Content {
		t.Errorf("contents differ: %q vs %q", first.Content, second.Content)
	}

	generated, err := svc.ListGeneratedLetters(context.Background())
	if err != nil {
		t.Fatalf("ListGeneratedLetters() error = %v", err)
	}
	if len(generated) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(generated))
	}
	if generated[0].ID != second.ID {
		t.Errorf("most recent letter first: got %q, want %q", generated[0].ID, second.ID)
	}
}

func TestGeneratedLetterSurvivesTemplateDeletion(t *testing.T) {
	svc, templateSvc, _ := newLetterFixture(t)

	template, err := templateSvc.CreateTemplate(context.Background(), domains.LetterTemplateCreate{
		Name:    "Carta de despedida",
		Content: "Adiós {{nombre}}",
	}, 1)
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}

	letter, err := svc.GenerateLetter(context.Background(), domains.LetterGenerate{TemplateID: template.ID, MemberID: 1}, "admin")
	if err != nil {
		t.Fatalf("GenerateLetter() error = %v", err)
	}

	if err := templateSvc.DeleteTemplate(context.Background(), template.ID); err != nil {
		t.Fatalf("DeleteTemplate() error = %v", err)
	}

	generated, err := svc.ListGeneratedLetters(context.Background())
	if err != nil {
		t.Fatalf("ListGeneratedLetters() error = %v", err)
	}
	if len(generated) != 1 {
		t.Fatalf("ledger has %d entries, want 1", len(generated))
	}
	if generated[0].Content != letter.Content {
		t.Errorf("snapshot changed after template deletion: %q", generated[0].Content)
	}
	if generated[0].TemplateName != "Carta de despedida" {
		t.Errorf("TemplateName = %q", generated[0].TemplateName)
	}
}
