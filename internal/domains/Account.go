package domains

import (
	"time"
)

type AccountRegister struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Account struct {
	Id        int64     `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	PassHash  string    `db:"passhash" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
