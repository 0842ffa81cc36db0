package domains

import (
	"time"
)

type Member struct {
	ID        int64     `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Ministry  *string   `db:"ministry" json:"ministry,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
