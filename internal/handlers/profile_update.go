package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
	"github.com/skillswap-in/skillswap-server/internal/services"
)

// ProfileReplacer defines the interface for replacing a profile by email.
type ProfileReplacer interface {
	Replace(ctx context.Context, email string, p models.SkillProfileDB) (*models.SkillProfileDB, error)
}

// ProfileUpdatedResponse represents a successful profile update
// swagger:model ProfileUpdatedResponse
type ProfileUpdatedResponse struct {
	// Success message
	// example: Profile updated successfully
	Msg string `json:"msg"`

	// Updated profile
	User models.SkillProfileDB `json:"user"`
}

// NewProfileUpdateHandler returns an HTTP handler that replaces a profile.
// @Summary Update a skill profile
// @Description Overwrites all fields of the profile keyed by email.
// @Tags profiles
// @Accept json
// @Produce json
// @Param email path string true "Profile email"
// @Param profile body handlers.ProfileRequest true "Profile fields"
// @Success 200 {object} handlers.ProfileUpdatedResponse "Updated profile"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Security BearerAuth
// @Router /users/{email} [put]
func NewProfileUpdateHandler(svc ProfileReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		updated, err := svc.Replace(r.Context(), email, req.toModel())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Msg: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileUpdatedResponse{
			Msg:  "Profile updated successfully",
			User: *updated,
		})
	}
}
