package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/services"
)

// ResetCompleter defines the interface for completing a password reset.
type ResetCompleter interface {
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

// ResetPasswordBody represents the JSON body for completing a reset
// swagger:model ResetPasswordBody
type ResetPasswordBody struct {
	// Reset token from the mailed link
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	// example: new-secret123
	Password string `json:"password"`
}

// NewResetPasswordHandler returns an HTTP handler that replaces the password.
// @Summary Complete a password reset
// @Description Verifies the reset token and replaces the stored password hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPassword body handlers.ResetPasswordBody true "Reset completion"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.MessageResponse "Invalid or expired reset link"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc ResetCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordBody

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		err := svc.CompletePasswordReset(r.Context(), req.Token, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid or expired reset link"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Msg: "Password updated successfully"})
	}
}
