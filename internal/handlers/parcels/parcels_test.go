package parcels

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service/parcelservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ParcelHandler, *MockService, *MockRoleService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	roles := NewMockRoleService(ctrl)
	handler := New(service, roles)
	defer ctrl.Finish()
	return handler, service, roles
}

func withCaller(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.EmailKey, email))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestBookHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Parcel booked",
			body: `{"title":"Documents","senderDistrict":"Dhaka","receiverDistrict":"Chattogram","totalCharge":1000}`,
			prepareMock: func() {
				service.EXPECT().Book(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Parcel) (*domain.Parcel, error) {
						assert.Equal(t, "sender@dakbox.app", p.UserEmail)
						p.ID = 1
						p.TracingID = "123456789012"
						p.Status = domain.ParcelPending
						return p, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing districts",
			body:          `{"title":"Documents","totalCharge":1000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "sender and receiver districts are required",
		},
		{
			name:          "Non-positive charge",
			body:          `{"senderDistrict":"Dhaka","receiverDistrict":"Dhaka","totalCharge":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "total charge must be a positive number",
		},
		{
			name:          "Unknown field rejected",
			body:          `{"senderDistrict":"Dhaka","receiverDistrict":"Dhaka","totalCharge":10,"status":"paid"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("POST", "/parcels", bytes.NewReader([]byte(tt.body))), "sender@dakbox.app")
			rr := httptest.NewRecorder()

			handler.Book(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestMyParcelsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		email        string
		caller       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Own parcels returned",
			email:  "sender@dakbox.app",
			caller: "sender@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetMine(gomock.Any(), "sender@dakbox.app").Return([]domain.Parcel{{ID: 1}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Someone else's parcels refused",
			email:        "other@dakbox.app",
			caller:       "sender@dakbox.app",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("GET", "/my-parcels/"+tt.email, nil), tt.caller)
			req = withURLParam(req, "email", tt.email)
			rr := httptest.NewRecorder()

			handler.MyParcels(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service, roles := NewMock(t)

	pending := &domain.Parcel{ID: 1, UserEmail: "owner@dakbox.app", Status: domain.ParcelPending}

	tests := []struct {
		name         string
		caller       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Owner cancels pending booking",
			caller: "owner@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
				service.EXPECT().Cancel(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Admin cancels someone else's booking",
			caller: "admin@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
				roles.EXPECT().GetRole(gomock.Any(), "admin@dakbox.app").Return(domain.RoleAdmin, nil)
				service.EXPECT().Cancel(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Stranger refused",
			caller: "stranger@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
				roles.EXPECT().GetRole(gomock.Any(), "stranger@dakbox.app").Return(domain.RoleUser, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Already paid",
			caller: "owner@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
				service.EXPECT().Cancel(gomock.Any(), 1).Return(parcelservice.ErrCannotCancel)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Parcel not found",
			caller: "owner@dakbox.app",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(nil, parcelservice.ErrParcelNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("DELETE", "/parcels/1", nil), tt.caller)
			req = withURLParam(req, "id", "1")
			rr := httptest.NewRecorder()

			handler.Cancel(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAssignRiderHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rider assigned",
			body: `{"riderEmail":"rider@dakbox.app","riderName":"Rider","eta":"2 days"}`,
			prepareMock: func() {
				service.EXPECT().AssignRider(gomock.Any(), 1, "rider@dakbox.app", "Rider", "2 days").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing rider email",
			body:         `{"riderName":"Rider"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Parcel not paid",
			body: `{"riderEmail":"rider@dakbox.app"}`,
			prepareMock: func() {
				service.EXPECT().AssignRider(gomock.Any(), 1, "rider@dakbox.app", "", "").Return(parcelservice.ErrNotPaid)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/admin/assign-rider/1", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", "1")
			rr := httptest.NewRecorder()

			handler.AssignRider(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Status advanced",
			body: `{"status":"in_transit"}`,
			prepareMock: func() {
				service.EXPECT().AdvanceStatus(gomock.Any(), 1, "rider@dakbox.app", "in_transit", "").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Backward transition",
			body: `{"status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().AdvanceStatus(gomock.Any(), 1, "rider@dakbox.app", "pending", "").Return(parcelservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not the assigned rider",
			body: `{"status":"delivered"}`,
			prepareMock: func() {
				service.EXPECT().AdvanceStatus(gomock.Any(), 1, "rider@dakbox.app", "delivered", "").Return(parcelservice.ErrNotAssignedRider)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withCaller(httptest.NewRequest("PATCH", "/parcels/update-status/1", bytes.NewReader([]byte(tt.body))), "rider@dakbox.app")
			req = withURLParam(req, "id", "1")
			rr := httptest.NewRecorder()

			handler.UpdateStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestTrackParcelHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		tracingID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Public summary hides owner details",
			tracingID: "4561261212345467",
			prepareMock: func() {
				service.EXPECT().TrackParcel(gomock.Any(), "4561261212345467").Return(&domain.Parcel{
					TracingID:        "4561261212345467",
					UserEmail:        "owner@dakbox.app",
					Status:           domain.ParcelInTransit,
					SenderDistrict:   "Dhaka",
					ReceiverDistrict: "Chattogram",
					RiderCommission:  200,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Tracing ID fails the checksum",
			tracingID:    "1234567890123",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Unknown tracing ID",
			tracingID: "4561261212345467",
			prepareMock: func() {
				service.EXPECT().TrackParcel(gomock.Any(), "4561261212345467").Return(nil, parcelservice.ErrParcelNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/track-parcel-info/"+tt.tracingID, nil)
			req = withURLParam(req, "id", tt.tracingID)
			rr := httptest.NewRecorder()

			handler.TrackParcel(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				body := rr.Body.String()
				assert.NotContains(t, body, "owner@dakbox.app")
				assert.NotContains(t, body, "Commission")
			}
		})
	}
}

func TestAllParcelsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListAll(gomock.Any(), "pending", 5, 5).Return([]domain.Parcel{{ID: 6}}, 11, nil)

	req := httptest.NewRequest("GET", "/admin/all-parcels?status=pending&page=2&limit=5", nil)
	rr := httptest.NewRecorder()

	handler.AllParcels(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
