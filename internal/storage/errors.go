package storage

import "errors"

var (
	ErrUserExist      = errors.New("user already exists")
	ErrTemplateExists = errors.New("template already exists")
	ErrNotFound       = errors.New("not found")
)
