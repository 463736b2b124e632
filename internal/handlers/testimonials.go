package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// TestimonialAdder defines the interface for appending testimonials.
type TestimonialAdder interface {
	Add(ctx context.Context, name, message string) error
}

// TestimonialLister defines the interface for listing testimonials.
type TestimonialLister interface {
	ListAll(ctx context.Context) ([]models.TestimonialDB, error)
}

// TestimonialBody represents the JSON body for adding a testimonial
// swagger:model TestimonialBody
type TestimonialBody struct {
	// Name shown with the testimonial
	// example: Ravi
	Name string `json:"name"`

	// Message
	// example: Found a great guitar teacher here!
	Message string `json:"message"`
}

// NewTestimonialAddHandler returns an HTTP handler that appends a
// testimonial with a server-assigned timestamp.
// @Summary Add a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body handlers.TestimonialBody true "Testimonial"
// @Success 201 {object} handlers.MessageResponse "Testimonial stored"
// @Router /testimonials [post]
func NewTestimonialAddHandler(svc TestimonialAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TestimonialBody

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		if err := svc.Add(r.Context(), req.Name, req.Message); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageResponse{Msg: "Thanks for your feedback!"})
	}
}

// NewTestimonialListHandler returns an HTTP handler that lists all
// testimonials, newest first.
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} models.TestimonialDB "All testimonials, newest first"
// @Router /testimonials [get]
func NewTestimonialListHandler(svc TestimonialLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(testimonials)
	}
}
