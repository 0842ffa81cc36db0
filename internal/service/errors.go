package service

import "errors"

var (
	PasswordIncorrect          = errors.New("password incorrect")
	TokenIncorrect             = errors.New("token incorrect")
	ErrTemplateNameRequired    = errors.New("template name is required")
	ErrTemplateContentRequired = errors.New("template content is required")
	ErrChurchNameRequired      = errors.New("church name is required")
)
