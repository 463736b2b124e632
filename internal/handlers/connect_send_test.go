package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestConnectSendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      ConnectRequestBody
		mockSetup    func(m *MockConnectSender)
		expectedCode int
		expectedMsg  string
		rawBody      bool
	}{
		{
			name: "success",
			reqBody: ConnectRequestBody{
				From:    "ravi@example.com",
				To:      "asha@example.com",
				Message: "Trade guitar for French?",
			},
			mockSetup: func(m *MockConnectSender) {
				m.EXPECT().
					Send(gomock.Any(), "ravi@example.com", "asha@example.com", "Trade guitar for French?").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Connect request sent!",
		},
		{
			name: "internal server error",
			reqBody: ConnectRequestBody{
				From: "ravi@example.com",
				To:   "asha@example.com",
			},
			mockSetup: func(m *MockConnectSender) {
				m.EXPECT().
					Send(gomock.Any(), "ravi@example.com", "asha@example.com", "").
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
			mockSvc := NewMockConnectSender(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewConnectSendHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/connect", bytes.NewBufferString("{broken"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/connect", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["msg"])
		})
	}
}
