package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skillswap-in/skillswap-server/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestConnectRespondHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const requestID = "3a9f1e42-6a1b-4c8e-8f2d-9f0b6d7c5a11"

	tests := []struct {
		name         string
		status       string
		mockSetup    func(m *MockConnectResponder)
		expectedCode int
		expectedMsg  string
		rawBody      bool
	}{
		{
			name:   "accepted",
			status: "accepted",
			mockSetup: func(m *MockConnectResponder) {
				m.EXPECT().
					Respond(gomock.Any(), requestID, "accepted").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Request accepted",
		},
		{
			name:   "rejected",
			status: "rejected",
			mockSetup: func(m *MockConnectResponder) {
				m.EXPECT().
					Respond(gomock.Any(), requestID, "rejected").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Request rejected",
		},
		{
			name:   "invalid status",
			status: "maybe",
			mockSetup: func(m *MockConnectResponder) {
				m.EXPECT().
					Respond(gomock.Any(), requestID, "maybe").
					Return(services.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid status",
		},
		{
			name:   "request not found",
			status: "accepted",
			mockSetup: func(m *MockConnectResponder) {
				m.EXPECT().
					Respond(gomock.Any(), requestID, "accepted").
					Return(services.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Request not found",
		},
		{
			name:   "internal server error",
			status: "accepted",
			mockSetup: func(m *MockConnectResponder) {
				m.EXPECT().
					Respond(gomock.Any(), requestID, "accepted").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConnectResponder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewConnectRespondHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPut, "/api/connect/respond/"+requestID, bytes.NewBufferString("{broken"))
			} else {
				bodyBytes, _ := json.Marshal(RespondBody{Status: tt.status})
				req = httptest.NewRequest(http.MethodPut, "/api/connect/respond/"+requestID, bytes.NewBuffer(bodyBytes))
			}
			req = withURLParam(req, "id", requestID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["msg"])
		})
	}
}
