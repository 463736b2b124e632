package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// ProfileCreator defines the interface for creating skill profiles.
type ProfileCreator interface {
	Create(ctx context.Context, p models.SkillProfileDB) error
}

// ProfileRequest represents the JSON body for creating or updating a profile
// swagger:model ProfileRequest
type ProfileRequest struct {
	// Name
	// example: Asha Kumar
	Name string `json:"name"`

	// City
	// example: Pune
	City string `json:"city"`

	// Skill offered
	// example: Acoustic Guitar
	Teach string `json:"teach"`

	// Skill wanted
	// example: French
	Learn string `json:"learn"`

	// Exchange mode
	// example: online
	Mode string `json:"mode"`

	// Email (lookup key, not unique)
	// example: asha@example.com
	Email string `json:"email"`

	// Short story shown on the profile card
	Story string `json:"story"`
}

func (req ProfileRequest) toModel() models.SkillProfileDB {
	return models.SkillProfileDB{
		Name:  req.Name,
		City:  req.City,
		Teach: req.Teach,
		Learn: req.Learn,
		Mode:  req.Mode,
		Email: req.Email,
		Story: req.Story,
	}
}

// ProfileCreatedResponse represents a successful profile creation
// swagger:model ProfileCreatedResponse
type ProfileCreatedResponse struct {
	// Success message
	// example: User saved successfully
	Message string `json:"message"`
}

// NewProfileCreateHandler returns an HTTP handler that stores a profile.
// @Summary Create a skill profile
// @Description Inserts a profile unconditionally; duplicate emails are not rejected.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body handlers.ProfileRequest true "Profile fields"
// @Success 201 {object} handlers.ProfileCreatedResponse "Profile stored"
// @Router /users [post]
func NewProfileCreateHandler(svc ProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		if err := svc.Create(r.Context(), req.toModel()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ProfileCreatedResponse{Message: "User saved successfully"})
	}
}
