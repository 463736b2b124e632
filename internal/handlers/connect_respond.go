package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/services"
)

// ConnectResponder defines the interface for resolving connect requests.
type ConnectResponder interface {
	Respond(ctx context.Context, id, status string) error
}

// RespondBody represents the JSON body for resolving a request
// swagger:model RespondBody
type RespondBody struct {
	// New status, accepted or rejected
	// example: accepted
	Status string `json:"status"`
}

// NewConnectRespondHandler returns an HTTP handler that accepts or
// rejects a connect request. The overwrite is unconditional: a later
// call can flip the status again.
// @Summary Respond to a connect request
// @Tags connect
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param respond body handlers.RespondBody true "Response status"
// @Success 200 {object} handlers.MessageResponse "Status updated"
// @Failure 400 {object} handlers.MessageResponse "Invalid status"
// @Failure 404 {object} handlers.MessageResponse "Request not found"
// @Router /connect/respond/{id} [put]
func NewConnectRespondHandler(svc ConnectResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req RespondBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		err := svc.Respond(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid status"})
			case errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Msg: "Request not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Msg: fmt.Sprintf("Request %s", req.Status)})
	}
}
