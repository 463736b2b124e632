package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// ReceivedLister defines the interface for listing incoming requests.
type ReceivedLister interface {
	ListReceived(ctx context.Context, email string) ([]models.ConnectRequestDB, error)
}

// NewConnectReceivedHandler returns an HTTP handler that lists all
// requests addressed to an email, any status.
// @Summary List received connect requests
// @Tags connect
// @Produce json
// @Param email path string true "Recipient email"
// @Success 200 {array} models.ConnectRequestDB "Incoming requests"
// @Router /connect/received/{email} [get]
func NewConnectReceivedHandler(svc ReceivedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		requests, err := svc.ListReceived(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(requests)
	}
}
