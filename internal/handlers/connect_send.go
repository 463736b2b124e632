package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skillswap-in/skillswap-server/internal/logger"
)

// ConnectSender defines the interface for sending connect requests.
type ConnectSender interface {
	Send(ctx context.Context, from, to, message string) error
}

// ConnectRequestBody represents the JSON body for sending a connect request
// swagger:model ConnectRequestBody
type ConnectRequestBody struct {
	// Sender email
	// example: ravi@example.com
	From string `json:"from"`

	// Recipient email
	// example: asha@example.com
	To string `json:"to"`

	// Message shown to the recipient
	// example: I'd love to trade guitar lessons for French.
	Message string `json:"message"`
}

// NewConnectSendHandler returns an HTTP handler that records a pending
// connect request.
// @Summary Send a connect request
// @Description Inserts a pending request between two profile emails. Endpoints are not validated.
// @Tags connect
// @Accept json
// @Produce json
// @Param connect body handlers.ConnectRequestBody true "Connect request"
// @Success 200 {object} handlers.MessageResponse "Request sent"
// @Router /connect [post]
func NewConnectSendHandler(svc ConnectSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConnectRequestBody

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Msg: "Invalid request body"})
			return
		}

		if err := svc.Send(r.Context(), req.From, req.To, req.Message); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Msg: internalErrorMsg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Msg: "Connect request sent!"})
	}
}
