package riders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/riderservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RiderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application submitted",
			body: `{"email":"rider@dakbox.app","name":"Rider","district":"Dhaka","phone":"+8801712345678"}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error) {
						app.ID = 1
						app.Status = domain.ApplicationPending
						return app, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate application",
			body: `{"email":"dup@dakbox.app","district":"Dhaka"}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, riderservice.ErrApplicationExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing district",
			body:         `{"email":"rider@dakbox.app"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/rider-applications", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Apply(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application approved",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1).Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Repeat approval reports zero modified",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1).Return(int64(0), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Application not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 99).Return(int64(0), riderservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("PATCH", "/rider-applications/approve/"+tt.id, nil), "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Approve(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApproveHandlerReportsModified(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Approve(gomock.Any(), 1).Return(int64(0), nil)

	req := withURLParam(httptest.NewRequest("PATCH", "/rider-applications/approve/1", nil), "id", "1")
	rr := httptest.NewRecorder()

	handler.Approve(rr, req)

	var resp struct {
		AppModified int64 `json:"appModified"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(0), resp.AppModified)
}

func TestToggleStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Toggled to penalty",
			prepareMock: func() {
				service.EXPECT().ToggleStatus(gomock.Any(), 1).Return(domain.ApplicationPenalty, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pending application",
			prepareMock: func() {
				service.EXPECT().ToggleStatus(gomock.Any(), 1).Return("", riderservice.ErrApplicationPending)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("PATCH", "/rider-applications/toggle-status/1", nil), "id", "1")
			rr := httptest.NewRecorder()

			handler.ToggleStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Withdraw(gomock.Any(), 1).Return(nil)

	req := withURLParam(httptest.NewRequest("DELETE", "/rider-applications/1", nil), "id", "1")
	rr := httptest.NewRecorder()

	handler.Withdraw(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
