package models

import (
	"time"

	"github.com/google/uuid"
)

// Connect request status lifecycle: pending -> accepted | rejected.
// A later respond call may overwrite the status again (latest wins).
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ConnectRequestDB represents a directed connection request between
// two profile emails. Neither endpoint is validated against existing
// profiles.
type ConnectRequestDB struct {
	RequestID uuid.UUID `json:"id" db:"request_id"`
	From      string    `json:"from" db:"from_email"`
	To        string    `json:"to" db:"to_email"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
