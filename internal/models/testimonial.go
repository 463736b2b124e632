package models

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialDB represents a public feedback entry. Append-only;
// listed newest first.
type TestimonialDB struct {
	TestimonialID uuid.UUID `json:"id" db:"testimonial_id"`
	Name          string    `json:"name" db:"name"`
	Message       string    `json:"message" db:"message"`
	Date          time.Time `json:"date" db:"date"`
}
