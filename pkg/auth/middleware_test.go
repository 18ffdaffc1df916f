package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	validToken, err := jwtService.GenerateJWT("User@Example.com", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantEmail  string
	}{
		{
			name:       "Valid Bearer Token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantEmail:  "user@example.com",
		},
		{
			name:       "Missing Header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Missing Bearer Prefix",
			authHeader: validToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer invalid.token.string",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEmail = CallerEmail(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/user-role", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			Middleware(jwtService)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantEmail, gotEmail)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		allowed     []string
		prepareMock func(checker *MockRoleChecker)
		wantStatus  int
	}{
		{
			name:    "Role Allowed",
			email:   "rider@example.com",
			allowed: []string{"rider", "admin"},
			prepareMock: func(checker *MockRoleChecker) {
				checker.EXPECT().GetRole(gomock.Any(), "rider@example.com").Return("rider", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "Role Forbidden",
			email:   "user@example.com",
			allowed: []string{"admin"},
			prepareMock: func(checker *MockRoleChecker) {
				checker.EXPECT().GetRole(gomock.Any(), "user@example.com").Return("user", nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "Lookup Fails",
			email:   "user@example.com",
			allowed: []string{"admin"},
			prepareMock: func(checker *MockRoleChecker) {
				checker.EXPECT().GetRole(gomock.Any(), "user@example.com").Return("", errors.New("database error"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:        "No Caller Email",
			email:       "",
			allowed:     []string{"admin"},
			prepareMock: func(checker *MockRoleChecker) {},
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			checker := NewMockRoleChecker(ctrl)
			tt.prepareMock(checker)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/users/admin-list", nil)
			if tt.email != "" {
				req = req.WithContext(context.WithValue(req.Context(), EmailKey, tt.email))
			}
			rr := httptest.NewRecorder()

			RequireRole(checker, tt.allowed...)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
