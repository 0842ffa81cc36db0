package domains

import (
	"time"
)

type LetterTemplateCreate struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

type LetterTemplateUpdate struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Content  *string `json:"content,omitempty"`
}

type LetterTemplate struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Content   string    `db:"content" json:"content"`
	Variables []string  `db:"variables" json:"variables"`
	CreatedBy int64     `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type TemplateFilter struct {
	Search   string
	Category string
}
