package services

import (
	"context"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// TestimonialReader defines read operations for testimonials.
type TestimonialReader interface {
	GetAll(ctx context.Context) ([]models.TestimonialDB, error)
}

// TestimonialWriter defines write operations for testimonials.
type TestimonialWriter interface {
	Save(ctx context.Context, name, message string) error
}

// TestimonialService handles the append-only testimonial log.
type TestimonialService struct {
	reader TestimonialReader
	writer TestimonialWriter
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(reader TestimonialReader, writer TestimonialWriter) *TestimonialService {
	return &TestimonialService{
		reader: reader,
		writer: writer,
	}
}

// Add appends a testimonial; the timestamp is server-assigned.
func (svc *TestimonialService) Add(ctx context.Context, name, message string) error {
	if err := svc.writer.Save(ctx, name, message); err != nil {
		logger.Log.Errorw("failed to save testimonial", "name", name, "err", err)
		return err
	}
	return nil
}

// ListAll returns all testimonials, newest first.
func (svc *TestimonialService) ListAll(ctx context.Context) ([]models.TestimonialDB, error) {
	testimonials, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list testimonials", "err", err)
		return nil, err
	}
	return testimonials, nil
}
