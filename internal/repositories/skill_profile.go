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

type SkillProfileReadRepository struct {
	db *sqlx.DB
}

func NewSkillProfileReadRepository(db *sqlx.DB) *SkillProfileReadRepository {
	return &SkillProfileReadRepository{db: db}
}

// GetAll returns every profile in storage order.
func (r *SkillProfileReadRepository) GetAll(ctx context.Context) ([]models.SkillProfileDB, error) {
	const query = `
		SELECT profile_id, name, city, teach, learn, mode, email, story, created_at
		FROM skill_profiles
		ORDER BY created_at
	`

	profiles := make([]models.SkillProfileDB, 0)
	err := r.db.SelectContext(ctx, &profiles, query)

	logger.Log.Debugw("skill_profiles select all",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(profiles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return profiles, nil
}

type SkillProfileWriteRepository struct {
	db *sqlx.DB
}

func NewSkillProfileWriteRepository(db *sqlx.DB) *SkillProfileWriteRepository {
	return &SkillProfileWriteRepository{db: db}
}

// Save inserts a profile unconditionally. Email is not checked for
// uniqueness, so duplicate profiles per email are possible.
func (r *SkillProfileWriteRepository) Save(ctx context.Context, p models.SkillProfileDB) error {
	const query = `
		INSERT INTO skill_profiles (profile_id, name, city, teach, learn, mode, email, story, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{uuid.New(), p.Name, p.City, p.Teach, p.Learn, p.Mode, p.Email, p.Story}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("skill_profiles insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", p.Email,
		"error", err,
	)

	return err
}

// ReplaceByEmail overwrites all fields of the oldest profile with the
// given email and returns the updated record, or nil when no profile
// matches.
func (r *SkillProfileWriteRepository) ReplaceByEmail(ctx context.Context, email string, p models.SkillProfileDB) (*models.SkillProfileDB, error) {
	const query = `
		UPDATE skill_profiles
		SET name = $2, city = $3, teach = $4, learn = $5, mode = $6, email = $7, story = $8
		WHERE profile_id = (
			SELECT profile_id FROM skill_profiles
			WHERE email = $1
			ORDER BY created_at
			LIMIT 1
		)
		RETURNING profile_id, name, city, teach, learn, mode, email, story, created_at
	`
	args := []any{email, p.Name, p.City, p.Teach, p.Learn, p.Mode, p.Email, p.Story}

	var updated models.SkillProfileDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Debugw("skill_profiles replace",
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
	return &updated, nil
}

// DeleteByEmail removes all profiles with the given email and returns
// the number of rows removed. Zero rows is not an error.
func (r *SkillProfileWriteRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	const query = `DELETE FROM skill_profiles WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("skill_profiles delete",
		"query", query,
		"email", email,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
