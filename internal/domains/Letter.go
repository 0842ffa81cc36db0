package domains

import (
	"time"
)

type LetterGenerate struct {
	TemplateID int64 `json:"template_id"`
	MemberID   int64 `json:"member_id"`
}

// GeneratedLetter is an immutable snapshot of one rendering: template name and
// member name are copied at generation time so the record survives later edits
// or deletion of the template.
type GeneratedLetter struct {
	ID           string    `db:"id" json:"id"`
	TemplateName string    `db:"template_name" json:"template_name"`
	MemberName   string    `db:"member_name" json:"member_name"`
	Content      string    `db:"content" json:"content"`
	GeneratedBy  string    `db:"generated_by" json:"generated_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
