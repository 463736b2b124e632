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

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      ResetPasswordBody
		mockSetup    func(m *MockResetCompleter)
		expectedCode int
		expectedMsg  string
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: ResetPasswordBody{Token: "valid-token", Password: "new-secret"},
			mockSetup: func(m *MockResetCompleter) {
				m.EXPECT().
					CompletePasswordReset(gomock.Any(), "valid-token", "new-secret").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Password updated successfully",
		},
		{
			name:    "expired token",
			reqBody: ResetPasswordBody{Token: "expired-token", Password: "new-secret"},
			mockSetup: func(m *MockResetCompleter) {
				m.EXPECT().
					CompletePasswordReset(gomock.Any(), "expired-token", "new-secret").
					Return(services.ErrInvalidResetToken)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid or expired reset link",
		},
		{
			name:    "internal server error",
			reqBody: ResetPasswordBody{Token: "valid-token", Password: "new-secret"},
			mockSetup: func(m *MockResetCompleter) {
				m.EXPECT().
					CompletePasswordReset(gomock.Any(), "valid-token", "new-secret").
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
			mockSvc := NewMockResetCompleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetPasswordHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/reset-password", bytes.NewBufferString("not json"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/reset-password", bytes.NewBuffer(bodyBytes))
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
