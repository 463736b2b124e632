package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

type ConnectRequestReadRepository struct {
	db *sqlx.DB
}

func NewConnectRequestReadRepository(db *sqlx.DB) *ConnectRequestReadRepository {
	return &ConnectRequestReadRepository{db: db}
}

// ListByRecipient returns all requests addressed to the given email,
// any status.
func (r *ConnectRequestReadRepository) ListByRecipient(ctx context.Context, email string) ([]models.ConnectRequestDB, error) {
	const query = `
		SELECT request_id, from_email, to_email, message, status, created_at, updated_at
		FROM connect_requests
		WHERE to_email = $1
		ORDER BY created_at
	`

	requests := make([]models.ConnectRequestDB, 0)
	err := r.db.SelectContext(ctx, &requests, query, email)

	logger.Log.Debugw("connect_requests select",
		"query", strings.Join(strings.Fields(query), " "),
		"to", email,
		"count", len(requests),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return requests, nil
}

type ConnectRequestWriteRepository struct {
	db *sqlx.DB
}

func NewConnectRequestWriteRepository(db *sqlx.DB) *ConnectRequestWriteRepository {
	return &ConnectRequestWriteRepository{db: db}
}

// Save inserts a pending request and returns the created record.
// Sender and recipient are stored as given; duplicate requests between
// the same pair are allowed.
func (r *ConnectRequestWriteRepository) Save(ctx context.Context, from, to, message string) (*models.ConnectRequestDB, error) {
	const query = `
		INSERT INTO connect_requests (request_id, from_email, to_email, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING request_id, from_email, to_email, message, status, created_at, updated_at
	`
	args := []any{uuid.New(), from, to, message, models.StatusPending}

	var created models.ConnectRequestDB
	err := r.db.GetContext(ctx, &created, query, args...)

	logger.Log.Debugw("connect_requests insert",
		"query", strings.Join(strings.Fields(query), " "),
		"from", from,
		"to", to,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStatus overwrites the status of the request with the given id
// unconditionally and returns the number of rows touched.
func (r *ConnectRequestWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) (int64, error) {
	const query = `
		UPDATE connect_requests
		SET status = $2, updated_at = NOW()
		WHERE request_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, requestID, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("connect_requests status update",
		"query", strings.Join(strings.Fields(query), " "),
		"request_id", requestID,
		"status", status,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
