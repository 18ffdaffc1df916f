package reviews

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/reviewservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Review stored with the caller as author",
			body: `{"riderEmail":"rider@dakbox.app","rating":5,"comment":"Fast"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						assert.Equal(t, "user@dakbox.app", r.UserEmail)
						r.ID = 1
						return r, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Rating out of range",
			body: `{"riderEmail":"rider@dakbox.app","rating":9}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, reviewservice.ErrInvalidRating)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing rider email",
			body:         `{"rating":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/reviews", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), auth.EmailKey, "user@dakbox.app"))
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRiderStatsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Stats(gomock.Any(), "rider@dakbox.app").Return(&domain.RiderStats{
		AverageRating:  4.3,
		ReviewCount:    12,
		DeliveredCount: 40,
	}, nil)

	req := httptest.NewRequest("GET", "/rider-stats/rider@dakbox.app", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("email", "rider@dakbox.app")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	handler.RiderStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var stats domain.RiderStats
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&stats))
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, 12, stats.ReviewCount)
	assert.Equal(t, 40, stats.DeliveredCount)
}
