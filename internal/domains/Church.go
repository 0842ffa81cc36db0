package domains

import (
	"time"
)

type Church struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	PastorName *string   `db:"pastor_name" json:"pastor_name,omitempty"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	Address    *string   `db:"address" json:"address,omitempty"`
	City       *string   `db:"city" json:"city,omitempty"`
	LogoUrl    *string   `db:"logo_url" json:"logo_url,omitempty"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type ChurchUpdate struct {
	Name       *string `json:"name,omitempty"`
	PastorName *string `json:"pastor_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	LogoUrl    *string `json:"logo_url,omitempty"`
}
