package cashouts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/cashoutservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CashoutHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withCaller(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.EmailKey, email))
}

func TestRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cash-out requested",
			body: `{"amount":700}`,
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), "rider@dakbox.app", 700.0).Return(&domain.CashoutRequest{
					ID: 1, RiderEmail: "rider@dakbox.app", Amount: 700, Status: domain.CashoutPending,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Below the minimum",
			body: `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), "rider@dakbox.app", 100.0).Return(nil, cashoutservice.ErrAmountBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "More than earned",
			body: `{"amount":9000}`,
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), "rider@dakbox.app", 9000.0).Return(nil, cashoutservice.ErrAmountExceedsEarned)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive amount",
			body:         `{"amount":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("POST", "/cashout-requests", bytes.NewReader([]byte(tt.body))), "rider@dakbox.app")
			rr := httptest.NewRecorder()

			handler.Request(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMyCashoutsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		email        string
		caller       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Own requests returned",
			email:  "rider@dakbox.app",
			caller: "rider@dakbox.app",
			prepareMock: func() {
				service.EXPECT().MyCashouts(gomock.Any(), "rider@dakbox.app").Return([]domain.CashoutRequest{{ID: 1}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Someone else's requests refused",
			email:        "other@dakbox.app",
			caller:       "rider@dakbox.app",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("GET", "/my-cashouts/"+tt.email, nil), tt.caller)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.email)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.MyCashouts(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Approve(gomock.Any(), 1).Return(int64(3), nil)

	req := httptest.NewRequest("PATCH", "/admin/approve-cashout/1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	handler.Approve(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		SettledParcels int64 `json:"settledParcels"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.SettledParcels)
}
