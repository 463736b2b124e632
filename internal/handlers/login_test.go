package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skillswap-in/skillswap-server/internal/models"
	"github.com/skillswap-in/skillswap-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      LoginRequest
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedMsg  string
		rawBody      bool
	}{
		{
			name:    "user not found",
			reqBody: LoginRequest{Email: "nobody@example.com", Password: "pass"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "pass").
					Return("", nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "User not found",
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Email: "asha@example.com", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "asha@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid credentials",
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Email: "asha@example.com", Password: "pass"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "asha@example.com", "pass").
					Return("", nil, errors.New("database failure"))
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
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, resp["msg"])
		})
	}
}

func TestLoginHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "asha@example.com", "secret123").
		Return("session-token", &models.AuthUserDB{Name: "Asha Kumar", Email: "asha@example.com"}, nil)

	handler := NewLoginHandler(mockSvc)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: "asha@example.com", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, "Asha Kumar", resp.User.Name)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}
