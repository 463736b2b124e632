package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
)

// CredentialReader defines read operations for credential records.
type CredentialReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AuthUserDB, error)
}

// CredentialWriter defines write operations for credential records.
type CredentialWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) error
	UpdatePasswordByID(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenIssuer issues signed session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// ResetTokenCodec issues and verifies short-lived reset tokens.
type ResetTokenCodec interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// ResetMailer delivers the password reset link.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, toEmail, resetLink string) error
}

// AuthService handles registration, login, and password reset.
type AuthService struct {
	reader        CredentialReader
	writer        CredentialWriter
	sessionTokens TokenIssuer
	resetTokens   ResetTokenCodec
	mailer        ResetMailer
	clientURL     string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader CredentialReader,
	writer CredentialWriter,
	sessionTokens TokenIssuer,
	resetTokens ResetTokenCodec,
	mailer ResetMailer,
	clientURL string,
) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		sessionTokens: sessionTokens,
		resetTokens:   resetTokens,
		mailer:        mailer,
		clientURL:     clientURL,
	}
}

// Register creates a credential record with a bcrypt-hashed password.
// Fails when the email is already registered.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) error {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check for existing credential", "email", email, "err", err)
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, name, email, string(hash)); err != nil {
		logger.Log.Errorw("failed to save credential", "email", email, "err", err)
		return err
	}

	return nil
}

// Login verifies the password and returns an unexpiring session token
// together with the credential record.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.AuthUserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get credential", "email", email, "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.sessionTokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// RequestPasswordReset issues a short-lived reset token and mails the
// reset link to the credential's email.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get credential", "email", email, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := svc.resetTokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password.html?token=%s", svc.clientURL, token)

	if err := svc.mailer.SendPasswordReset(ctx, email, resetLink); err != nil {
		logger.Log.Errorw("failed to send reset mail", "email", email, "err", err)
		return err
	}

	return nil
}

// CompletePasswordReset verifies the reset token and replaces the
// stored password hash.
func (svc *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := svc.resetTokens.GetUserID(ctx, token)
	if err != nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePasswordByID(ctx, userID, string(hash)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}

	return nil
}
