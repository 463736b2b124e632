package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

type AuthUserReadRepository struct {
	db *sqlx.DB
}

func NewAuthUserReadRepository(db *sqlx.DB) *AuthUserReadRepository {
	return &AuthUserReadRepository{db: db}
}

// GetByEmail returns the credential record for the given email, or
// nil when no record exists.
func (r *AuthUserReadRepository) GetByEmail(ctx context.Context, email string) (*models.AuthUserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at, updated_at
		FROM auth_users
		WHERE email = $1
	`

	var user models.AuthUserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("auth_users select",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type AuthUserWriteRepository struct {
	db *sqlx.DB
}

func NewAuthUserWriteRepository(db *sqlx.DB) *AuthUserWriteRepository {
	return &AuthUserWriteRepository{db: db}
}

// Save inserts a new credential record.
func (r *AuthUserWriteRepository) Save(ctx context.Context, name, email, passwordHash string) error {
	const query = `
		INSERT INTO auth_users (user_id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{uuid.New(), name, email, passwordHash}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("auth_users insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	return err
}

// UpdatePasswordByID replaces the stored password hash. Used by the
// password reset flow.
func (r *AuthUserWriteRepository) UpdatePasswordByID(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE auth_users
		SET password_hash = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, userID, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("auth_users password update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"rows", rowsAffected,
		"error", err,
	)

	return err
}
