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

func TestResetRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      ResetRequestBody
		mockSetup    func(m *MockResetRequester)
		expectedCode int
		expectedMsg  string
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: ResetRequestBody{Email: "asha@example.com"},
			mockSetup: func(m *MockResetRequester) {
				m.EXPECT().
					RequestPasswordReset(gomock.Any(), "asha@example.com").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Password reset link sent to your email.",
		},
		{
			name:    "email not registered",
			reqBody: ResetRequestBody{Email: "ghost@example.com"},
			mockSetup: func(m *MockResetRequester) {
				m.EXPECT().
					RequestPasswordReset(gomock.Any(), "ghost@example.com").
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Email not registered",
		},
		{
			name:    "internal server error",
			reqBody: ResetRequestBody{Email: "asha@example.com"},
			mockSetup: func(m *MockResetRequester) {
				m.EXPECT().
					RequestPasswordReset(gomock.Any(), "asha@example.com").
					Return(errors.New("smtp failure"))
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
			mockSvc := NewMockResetRequester(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetRequestHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/reset-request", bytes.NewBufferString("not json"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/reset-request", bytes.NewBuffer(bodyBytes))
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
