package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/userservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withCaller(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.EmailKey, email))
}

func TestMintTokenHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Token minted",
			body: `{"email":"user@dakbox.app"}`,
			prepareMock: func() {
				service.EXPECT().MintToken("user@dakbox.app").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Unknown field rejected",
			body:          `{"email":"user@dakbox.app","admin":true}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing email",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "email is required",
		},
		{
			name: "Error generating token",
			body: `{"email":"user@dakbox.app"}`,
			prepareMock: func() {
				service.EXPECT().MintToken("user@dakbox.app").Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/jwt", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.MintToken(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "New user created",
			body: `{"email":"new@dakbox.app","name":"New User"}`,
			prepareMock: func() {
				service.EXPECT().EnsureUser(gomock.Any(), "new@dakbox.app", "New User").Return(true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Existing user reported",
			body: `{"email":"old@dakbox.app","name":"Old User"}`,
			prepareMock: func() {
				service.EXPECT().EnsureUser(gomock.Any(), "old@dakbox.app", "Old User").Return(false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"email":"new@dakbox.app","name":"New User"}`,
			prepareMock: func() {
				service.EXPECT().EnsureUser(gomock.Any(), "new@dakbox.app", "New User").Return(false, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/users", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetUserRoleHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		caller       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Own role returned",
			query:  "?email=user@dakbox.app",
			caller: "user@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetRole(gomock.Any(), "user@dakbox.app").Return(domain.RoleUser, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Asking about someone else",
			query:        "?email=other@dakbox.app",
			caller:       "user@dakbox.app",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing email",
			query:        "",
			caller:       "user@dakbox.app",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Mixed case email matches the caller",
			query:  "?email=User@Dakbox.App",
			caller: "user@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetRole(gomock.Any(), "user@dakbox.app").Return(domain.RoleUser, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "User not found",
			query:  "?email=user@dakbox.app",
			caller: "user@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetRole(gomock.Any(), "user@dakbox.app").Return("", userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("GET", "/user-role"+tt.query, nil), tt.caller)
			rr := httptest.NewRecorder()

			handler.GetUserRole(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMakeAdminHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "User promoted",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().MakeAdmin(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().MakeAdmin(gomock.Any(), 99).Return(userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/users/make-admin/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.MakeAdmin(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListUsers(gomock.Any(), "dak", 10, 0).Return([]domain.User{
		{ID: 1, Email: "a@dakbox.app"},
	}, 1, nil)

	req := httptest.NewRequest("GET", "/users/admin-list?search=dak", nil)
	rr := httptest.NewRecorder()

	handler.AdminList(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Items []json.RawMessage `json:"items"`
		Total int               `json:"total"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Total)
}
