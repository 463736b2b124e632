package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

type TestimonialReadRepository struct {
	db *sqlx.DB
}

func NewTestimonialReadRepository(db *sqlx.DB) *TestimonialReadRepository {
	return &TestimonialReadRepository{db: db}
}

// GetAll returns all testimonials, newest first.
func (r *TestimonialReadRepository) GetAll(ctx context.Context) ([]models.TestimonialDB, error) {
	const query = `
		SELECT testimonial_id, name, message, date
		FROM testimonials
		ORDER BY date DESC
	`

	testimonials := make([]models.TestimonialDB, 0)
	err := r.db.SelectContext(ctx, &testimonials, query)

	logger.Log.Debugw("testimonials select",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(testimonials),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

type TestimonialWriteRepository struct {
	db *sqlx.DB
}

func NewTestimonialWriteRepository(db *sqlx.DB) *TestimonialWriteRepository {
	return &TestimonialWriteRepository{db: db}
}

// Save appends a testimonial with a server-assigned timestamp.
func (r *TestimonialWriteRepository) Save(ctx context.Context, name, message string) error {
	const query = `
		INSERT INTO testimonials (testimonial_id, name, message, date)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{uuid.New(), name, message}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("testimonials insert",
		"query", strings.Join(strings.Fields(query), " "),
		"name", name,
		"error", err,
	)

	return err
}
