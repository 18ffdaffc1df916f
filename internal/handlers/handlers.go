package handlers

import (
	"net/http"

	_ "github.com/dakbox/courier/docs"
	cashouthandlers "github.com/dakbox/courier/internal/handlers/cashouts"
	dashboardhandlers "github.com/dakbox/courier/internal/handlers/dashboard"
	parcelhandlers "github.com/dakbox/courier/internal/handlers/parcels"
	paymenthandlers "github.com/dakbox/courier/internal/handlers/payments"
	reviewhandlers "github.com/dakbox/courier/internal/handlers/reviews"
	riderhandlers "github.com/dakbox/courier/internal/handlers/riders"
	userhandlers "github.com/dakbox/courier/internal/handlers/users"
	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/service"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler interface {
	MintToken(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	GetUserRole(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	MakeAdmin(w http.ResponseWriter, r *http.Request)
	RidersList(w http.ResponseWriter, r *http.Request)
}

type ParcelHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	MyParcels(w http.ResponseWriter, r *http.Request)
	GetParcel(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	AssignRider(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AllParcels(w http.ResponseWriter, r *http.Request)
	MyDeliveries(w http.ResponseWriter, r *http.Request)
	TrackParcel(w http.ResponseWriter, r *http.Request)
	Tracking(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	PaymentSuccess(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type RiderHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type CashoutHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	MyCashouts(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	RiderReviews(w http.ResponseWriter, r *http.Request)
	RiderStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler      UserHandler
	ParcelHandler    ParcelHandler
	PaymentHandler   PaymentHandler
	RiderHandler     RiderHandler
	CashoutHandler   CashoutHandler
	ReviewHandler    ReviewHandler
	DashboardHandler DashboardHandler

	jwtService  auth.JWTServiceInterface
	roleChecker auth.RoleChecker
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		UserHandler:      userhandlers.New(s.UserService),
		ParcelHandler:    parcelhandlers.New(s.ParcelService, s.UserService),
		PaymentHandler:   paymenthandlers.New(s.PaymentService),
		RiderHandler:     riderhandlers.New(s.RiderService),
		CashoutHandler:   cashouthandlers.New(s.CashoutService),
		ReviewHandler:    reviewhandlers.New(s.ReviewService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		jwtService:       jwtService,
		roleChecker:      s.UserService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Courier server is running"))
	})
	r.Post("/jwt", h.UserHandler.MintToken)
	r.Post("/users", h.UserHandler.Register)
	r.Get("/track-parcel-info/{id}", h.ParcelHandler.TrackParcel)
	r.Get("/tracking/{id}", h.ParcelHandler.Tracking)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))

		r.Get("/user-role", h.UserHandler.GetUserRole)
		r.Post("/parcels", h.ParcelHandler.Book)
		r.Get("/my-parcels/{email}", h.ParcelHandler.MyParcels)
		r.Get("/parcel/{id}", h.ParcelHandler.GetParcel)
		r.Delete("/parcels/{id}", h.ParcelHandler.Cancel)
		r.Post("/create-payment-intent", h.PaymentHandler.CreateIntent)
		r.Patch("/parcel/payment-success/{id}", h.PaymentHandler.PaymentSuccess)
		r.Get("/payment-history", h.PaymentHandler.History)
		r.Post("/rider-applications", h.RiderHandler.Apply)
		r.Post("/reviews", h.ReviewHandler.Submit)
		r.Get("/rider-reviews/{email}", h.ReviewHandler.RiderReviews)
		r.Get("/rider-stats/{email}", h.ReviewHandler.RiderStats)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(h.roleChecker, domain.RoleRider, domain.RoleAdmin))

			r.Patch("/parcels/update-status/{id}", h.ParcelHandler.UpdateStatus)
			r.Get("/rider/my-deliveries/{email}", h.ParcelHandler.MyDeliveries)
			r.Post("/cashout-requests", h.CashoutHandler.Request)
			r.Get("/my-cashouts/{email}", h.CashoutHandler.MyCashouts)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(h.roleChecker, domain.RoleAdmin))

			r.Get("/users/admin-list", h.UserHandler.AdminList)
			r.Patch("/users/make-admin/{id}", h.UserHandler.MakeAdmin)
			r.Get("/users/riders-list", h.UserHandler.RidersList)
			r.Patch("/admin/assign-rider/{id}", h.ParcelHandler.AssignRider)
			r.Get("/admin/all-parcels", h.ParcelHandler.AllParcels)
			r.Get("/rider-applications", h.RiderHandler.List)
			r.Patch("/rider-applications/approve/{id}", h.RiderHandler.Approve)
			r.Patch("/rider-applications/toggle-status/{id}", h.RiderHandler.ToggleStatus)
			r.Delete("/rider-applications/{id}", h.RiderHandler.Withdraw)
			r.Get("/admin/cashout-requests", h.CashoutHandler.List)
			r.Patch("/admin/approve-cashout/{id}", h.CashoutHandler.Approve)
			r.Get("/admin/dashboard-stats", h.DashboardHandler.Stats)
		})
	})

	return r
}
