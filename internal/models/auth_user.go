package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthUserDB represents a credential record in the database.
// Credentials are independent of skill profiles; the two share an
// email by convention only.
type AuthUserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"` // unique
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
