package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		count            int64
		ttl              time.Duration
		counterErr       error
		expectedStatus   int
		expectNextCalled bool
		expectRetryAfter string
	}{
		{
			name:             "first attempt allowed",
			count:            1,
			ttl:              15 * time.Minute,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "fifth attempt allowed",
			count:            5,
			ttl:              10 * time.Minute,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "sixth attempt limited",
			count:            6,
			ttl:              10 * time.Minute,
			expectedStatus:   http.StatusTooManyRequests,
			expectRetryAfter: "600",
		},
		{
			name:             "limited with expired ttl falls back to full window",
			count:            7,
			ttl:              0,
			expectedStatus:   http.StatusTooManyRequests,
			expectRetryAfter: "900",
		},
		{
			name:             "counter failure fails open",
			counterErr:       errors.New("redis down"),
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewMockAttemptCounter(ctrl)
			counter.EXPECT().
				Increment(gomock.Any(), "192.0.2.1").
				Return(tt.count, tt.ttl, tt.counterErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := LoginRateLimitMiddleware(counter)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "192.0.2.1:54321"
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.Equal(t, tt.expectRetryAfter, rr.Header().Get("Retry-After"))

				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Too many login attempts. Please try again after 15 minutes.", resp["msg"])
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "forwarded single", remoteAddr: "10.0.0.1:1234", forwarded: "203.0.113.7", want: "203.0.113.7"},
		{name: "forwarded chain", remoteAddr: "10.0.0.1:1234", forwarded: "203.0.113.7, 10.0.0.2", want: "203.0.113.7"},
		{name: "no port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
