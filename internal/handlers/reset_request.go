package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/services"
)

// ResetRequester defines the interface for starting a password reset.
type ResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// ResetRequestBody represents the JSON body for requesting a reset link
// swagger:model ResetRequestBody
type ResetRequestBody struct {
	// Email
	// required: true
	// example: asha@example.com
	Email string `json:"email"`
}

// NewResetRequestHandler returns an HTTP handler that mails a reset link.
// @Summary Request a password reset link
// @Description Issues a 15-minute reset token and mails it as a link.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetRequest body handlers.ResetRequestBody true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Reset link sent"
// @Failure 404 {object} handlers.MessageResponse "Email not registered"
// @Router /reset-request [post]
func NewResetRequestHandler(svc ResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequestBody

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		err := svc.RequestPasswordReset(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Msg: "Email not registered"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Msg: "Password reset link sent to your email."})
	}
}
