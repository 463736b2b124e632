package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// SkillMatcher defines the interface for substring skill matching.
type SkillMatcher interface {
	FindBySkill(ctx context.Context, query string) ([]models.SkillProfileDB, error)
}

// ProfileLister defines the interface for listing every profile.
type ProfileLister interface {
	ListAll(ctx context.Context) ([]models.SkillProfileDB, error)
}

// NewMatchHandler returns an HTTP handler that finds profiles teaching
// a skill. The match is a literal, case-insensitive substring test
// against the teach field.
// @Summary Find profiles by skill
// @Description Returns profiles whose teach field contains the skill as a case-insensitive substring.
// @Tags profiles
// @Produce json
// @Param skill path string true "Skill substring"
// @Success 200 {array} models.SkillProfileDB "Matching profiles"
// @Router /users/match/{skill} [get]
func NewMatchHandler(svc SkillMatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := chi.URLParam(r, "skill")

		matches, err := svc.FindBySkill(r.Context(), skill)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(matches)
	}
}

// NewListProfilesHandler returns an HTTP handler that lists every profile.
// @Summary List all profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.SkillProfileDB "All profiles"
// @Router /users/match/all [get]
func NewListProfilesHandler(svc ProfileLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profiles)
	}
}
