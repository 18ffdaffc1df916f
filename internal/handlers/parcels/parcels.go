package parcels

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/parcelservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/dakbox/courier/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Book(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error)
	GetByID(ctx context.Context, id int) (*domain.Parcel, error)
	GetMine(ctx context.Context, email string) ([]domain.Parcel, error)
	Cancel(ctx context.Context, id int) error
	AssignRider(ctx context.Context, id int, riderEmail, riderName, eta string) error
	AdvanceStatus(ctx context.Context, id int, riderEmail, status, message string) error
	ListAll(ctx context.Context, status string, limit, offset int) ([]domain.Parcel, int, error)
	RiderDeliveries(ctx context.Context, riderEmail string) ([]domain.Parcel, error)
	TrackParcel(ctx context.Context, tracingID string) (*domain.Parcel, error)
	TrackingEvents(ctx context.Context, tracingID string) ([]domain.TrackingUpdate, error)
}

type RoleService interface {
	GetRole(ctx context.Context, email string) (string, error)
}

type ParcelHandler struct {
	parcelService Service
	roleService   RoleService
}

func New(parcelService Service, roleService RoleService) *ParcelHandler {
	return &ParcelHandler{
		parcelService: parcelService,
		roleService:   roleService,
	}
}

// Book godoc
//
//	@Summary		Book a parcel
//	@Description	Create a pending booking owned by the caller and open its tracking history.
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BookParcelRequestDTO	true	"Booking payload"
//	@Success		201		{object}	dto.ParcelResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/parcels [post]
func (h *ParcelHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookParcelRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	parcel := &domain.Parcel{
		UserEmail:        auth.CallerEmail(r.Context()),
		Title:            req.Title,
		ParcelType:       req.ParcelType,
		SenderName:       req.SenderName,
		SenderDistrict:   req.SenderDistrict,
		ReceiverName:     req.ReceiverName,
		ReceiverDistrict: req.ReceiverDistrict,
		ReceiverAddress:  req.ReceiverAddress,
		Weight:           req.Weight,
		TotalCharge:      req.TotalCharge,
	}
	booked, err := h.parcelService.Book(r.Context(), parcel)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toParcelDTO(booked))
}

// MyParcels godoc
//
//	@Summary		List the caller's parcels
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Owner email"
//	@Success		200		{array}		dto.ParcelResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Asking about someone else"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/my-parcels/{email} [get]
func (h *ParcelHandler) MyParcels(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	if email != auth.CallerEmail(r.Context()) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
		return
	}

	parcels, err := h.parcelService.GetMine(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParcelDTOs(parcels))
}

// GetParcel godoc
//
//	@Summary		Get a parcel by ID
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Parcel ID"
//	@Success		200	{object}	dto.ParcelResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"Parcel not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/parcel/{id} [get]
func (h *ParcelHandler) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	parcel, err := h.parcelService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, parcelservice.ErrParcelNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParcelDTO(parcel))
}

// Cancel godoc
//
//	@Summary		Cancel a pending booking
//	@Description	Only the owner or an admin may cancel, and only while the parcel is still pending.
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Parcel ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Parcel already paid"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Parcel not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/parcels/{id} [delete]
func (h *ParcelHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	parcel, err := h.parcelService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, parcelservice.ErrParcelNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	caller := auth.CallerEmail(r.Context())
	if parcel.UserEmail != caller {
		role, err := h.roleService.GetRole(r.Context(), caller)
		if err != nil || role != domain.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
			return
		}
	}

	if err := h.parcelService.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, parcelservice.ErrParcelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, parcelservice.ErrCannotCancel):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Parcel booking cancelled"})
}

// AssignRider godoc
//
//	@Summary		Assign a rider to a paid parcel
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Parcel ID"
//	@Param			request	body		dto.AssignRiderRequestDTO	true	"Rider payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Parcel not paid"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		404		{object}	utils.Response	"Parcel not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/assign-rider/{id} [patch]
func (h *ParcelHandler) AssignRider(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req dto.AssignRiderRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.parcelService.AssignRider(r.Context(), id, req.RiderEmail, req.RiderName, req.ETA); err != nil {
		switch {
		case errors.Is(err, parcelservice.ErrParcelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, parcelservice.ErrNotPaid):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Rider assigned"})
}

// UpdateStatus godoc
//
//	@Summary		Advance a parcel's delivery status
//	@Description	Riders move their own assignments forward; a delivery fixes the commission split.
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Parcel ID"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid transition"
//	@Failure		403		{object}	utils.Response	"Not the assigned rider"
//	@Failure		404		{object}	utils.Response	"Parcel not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/parcels/update-status/{id} [patch]
func (h *ParcelHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rider := auth.CallerEmail(r.Context())
	if err := h.parcelService.AdvanceStatus(r.Context(), id, rider, req.Status, req.Message); err != nil {
		switch {
		case errors.Is(err, parcelservice.ErrParcelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, parcelservice.ErrNotAssignedRider):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, parcelservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Parcel status updated"})
}

// AllParcels godoc
//
//	@Summary		List every parcel
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.ParcelsPageResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/all-parcels [get]
func (h *ParcelHandler) AllParcels(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	parcels, total, err := h.parcelService.ListAll(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ParcelsPageResponseDTO{
		Items: toParcelDTOs(parcels),
		Total: total,
	})
}

// MyDeliveries godoc
//
//	@Summary		List a rider's assigned parcels
//	@Tags			Parcels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Rider email"
//	@Success		200		{array}		dto.ParcelResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Asking about someone else"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/rider/my-deliveries/{email} [get]
func (h *ParcelHandler) MyDeliveries(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	if email != auth.CallerEmail(r.Context()) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
		return
	}

	parcels, err := h.parcelService.RiderDeliveries(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParcelDTOs(parcels))
}

// TrackParcel godoc
//
//	@Summary		Public tracking summary
//	@Description	Look a parcel up by tracing ID without exposing owner or commission details.
//	@Tags			Tracking
//	@Produce		json
//	@Param			id	path		string	true	"Tracing ID"
//	@Success		200	{object}	dto.TrackParcelResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed tracing ID"
//	@Failure		404	{object}	utils.Response	"Parcel not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/track-parcel-info/{id} [get]
func (h *ParcelHandler) TrackParcel(w http.ResponseWriter, r *http.Request) {
	tracingID := chi.URLParam(r, "id")
	if !validate.IsLuhn(tracingID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tracing ID")
		return
	}

	parcel, err := h.parcelService.TrackParcel(r.Context(), tracingID)
	if err != nil {
		if errors.Is(err, parcelservice.ErrParcelNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TrackParcelResponseDTO{
		TracingID:        parcel.TracingID,
		Status:           parcel.Status,
		SenderDistrict:   parcel.SenderDistrict,
		ReceiverDistrict: parcel.ReceiverDistrict,
		RiderName:        parcel.RiderName,
		DeliveryETA:      parcel.DeliveryETA,
		DeliveredDate:    parcel.DeliveredDate,
	})
}

// Tracking godoc
//
//	@Summary		Tracking history
//	@Description	All tracking events for a tracing ID, oldest first.
//	@Tags			Tracking
//	@Produce		json
//	@Param			id	path		string	true	"Tracing ID"
//	@Success		200	{array}		dto.TrackingEventResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed tracing ID"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/tracking/{id} [get]
func (h *ParcelHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	tracingID := chi.URLParam(r, "id")
	if !validate.IsLuhn(tracingID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tracing ID")
		return
	}

	updates, err := h.parcelService.TrackingEvents(r.Context(), tracingID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.TrackingEventResponseDTO, len(updates))
	for i, u := range updates {
		out[i] = dto.TrackingEventResponseDTO{
			TracingID: u.TracingID,
			Status:    u.Status,
			Message:   u.Message,
			Time:      u.EventTime,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func toParcelDTO(p *domain.Parcel) dto.ParcelResponseDTO {
	return dto.ParcelResponseDTO{
		ID:               p.ID,
		UserEmail:        p.UserEmail,
		TracingID:        p.TracingID,
		Title:            p.Title,
		ParcelType:       p.ParcelType,
		SenderName:       p.SenderName,
		SenderDistrict:   p.SenderDistrict,
		ReceiverName:     p.ReceiverName,
		ReceiverDistrict: p.ReceiverDistrict,
		ReceiverAddress:  p.ReceiverAddress,
		Weight:           p.Weight,
		TotalCharge:      p.TotalCharge,
		Status:           p.Status,
		RiderEmail:       p.RiderEmail,
		RiderName:        p.RiderName,
		DeliveryETA:      p.DeliveryETA,
		RiderCommission:  p.RiderCommission,
		AdminCommission:  p.AdminCommission,
		DeliveredDate:    p.DeliveredDate,
		IsCashedOut:      p.IsCashedOut,
		CreatedAt:        p.CreatedAt,
	}
}

func toParcelDTOs(parcels []domain.Parcel) []dto.ParcelResponseDTO {
	out := make([]dto.ParcelResponseDTO, len(parcels))
	for i := range parcels {
		out[i] = toParcelDTO(&parcels[i])
	}
	return out
}
