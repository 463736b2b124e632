package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillProfileDB represents a skill-exchange profile.
// Email is the lookup key for update/delete but is not unique at the
// storage layer; duplicate creates are allowed.
type SkillProfileDB struct {
	ProfileID uuid.UUID `json:"id" db:"profile_id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city" db:"city"`
	Teach     string    `json:"teach" db:"teach"`
	Learn     string    `json:"learn" db:"learn"`
	Mode      string    `json:"mode" db:"mode"`
	Email     string    `json:"email" db:"email"`
	Story     string    `json:"story" db:"story"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
