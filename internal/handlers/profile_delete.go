package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap-in/skillswap-server/internal/logger"
)

// ProfileDeleter defines the interface for deleting a profile by email.
type ProfileDeleter interface {
	Delete(ctx context.Context, email string) error
}

// NewProfileDeleteHandler returns an HTTP handler that removes a profile.
// Deleting a missing profile still reports success.
// @Summary Delete a skill profile
// @Description Removes the profile keyed by email. Idempotent.
// @Tags profiles
// @Produce json
// @Param email path string true "Profile email"
// @Success 200 {object} handlers.MessageResponse "Profile deleted"
// @Security BearerAuth
// @Router /users/{email} [delete]
func NewProfileDeleteHandler(svc ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		if err := svc.Delete(r.Context(), email); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Error deleting profile"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Msg: "Profile deleted successfully"})
	}
}
