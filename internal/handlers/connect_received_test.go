package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skillswap-in/skillswap-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectReceivedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns incoming requests of any status", func(t *testing.T) {
		requests := []models.ConnectRequestDB{
			{From: "ravi@example.com", To: "asha@example.com", Status: models.StatusPending},
			{From: "meera@example.com", To: "asha@example.com", Status: models.StatusAccepted},
		}

		mockSvc := NewMockReceivedLister(ctrl)
		mockSvc.EXPECT().
			ListReceived(gomock.Any(), "asha@example.com").
			Return(requests, nil)

		handler := NewConnectReceivedHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/connect/received/asha@example.com", nil)
		req = withURLParam(req, "email", "asha@example.com")

		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []models.ConnectRequestDB
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, models.StatusPending, resp[0].Status)
		assert.Equal(t, models.StatusAccepted, resp[1].Status)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockReceivedLister(ctrl)
		mockSvc.EXPECT().
			ListReceived(gomock.Any(), "asha@example.com").
			Return(nil, errors.New("database failure"))

		handler := NewConnectReceivedHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/connect/received/asha@example.com", nil)
		req = withURLParam(req, "email", "asha@example.com")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
