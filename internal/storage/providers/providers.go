package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	AuthProvider     *AuthProvider
	TemplateProvider *TemplateProvider
	LetterProvider   *LetterProvider
	MemberProvider   *MemberProvider
	ChurchProvider   *ChurchProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		AuthProvider:     NewAuthProvider(db),
		TemplateProvider: NewTemplateProvider(db),
		LetterProvider:   NewLetterProvider(db),
		MemberProvider:   NewMemberProvider(db),
		ChurchProvider:   NewChurchProvider(db),
	}
}
