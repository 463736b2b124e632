package services

import (
	"context"
	"errors"
	"strings"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// ErrProfileNotFound is returned when no profile matches the given email.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileReader defines read operations for skill profiles.
type ProfileReader interface {
	GetAll(ctx context.Context) ([]models.SkillProfileDB, error)
}

// ProfileWriter defines write operations for skill profiles.
type ProfileWriter interface {
	Save(ctx context.Context, p models.SkillProfileDB) error
	ReplaceByEmail(ctx context.Context, email string, p models.SkillProfileDB) (*models.SkillProfileDB, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// ProfileService handles profile CRUD and skill matching.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a profile unconditionally. Duplicate emails are not
// rejected at this layer.
func (svc *ProfileService) Create(ctx context.Context, p models.SkillProfileDB) error {
	if err := svc.writer.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save profile", "email", p.Email, "err", err)
		return err
	}
	return nil
}

// Replace overwrites all fields of the profile keyed by email and
// returns the updated record.
func (svc *ProfileService) Replace(ctx context.Context, email string, p models.SkillProfileDB) (*models.SkillProfileDB, error) {
	updated, err := svc.writer.ReplaceByEmail(ctx, email, p)
	if err != nil {
		logger.Log.Errorw("failed to replace profile", "email", email, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrProfileNotFound
	}
	return updated, nil
}

// Delete removes the profile keyed by email. Deleting a missing
// profile is not an error.
func (svc *ProfileService) Delete(ctx context.Context, email string) error {
	if _, err := svc.writer.DeleteByEmail(ctx, email); err != nil {
		logger.Log.Errorw("failed to delete profile", "email", email, "err", err)
		return err
	}
	return nil
}

// ListAll returns every profile.
func (svc *ProfileService) ListAll(ctx context.Context) ([]models.SkillProfileDB, error) {
	profiles, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list profiles", "err", err)
		return nil, err
	}
	return profiles, nil
}

// FindBySkill returns profiles whose teach field contains the query as
// a contiguous, case-insensitive substring. The empty query matches
// every profile with a non-empty teach field.
func (svc *ProfileService) FindBySkill(ctx context.Context, query string) ([]models.SkillProfileDB, error) {
	profiles, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load profiles for matching", "err", err)
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]models.SkillProfileDB, 0)
	for _, p := range profiles {
		if p.Teach == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.Teach), needle) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}
