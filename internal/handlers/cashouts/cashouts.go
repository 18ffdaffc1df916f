package cashouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/cashoutservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Request(ctx context.Context, riderEmail string, amount float64) (*domain.CashoutRequest, error)
	MyCashouts(ctx context.Context, riderEmail string) ([]domain.CashoutRequest, error)
	List(ctx context.Context, limit, offset int) ([]domain.CashoutRequest, int, error)
	Approve(ctx context.Context, id int) (int64, error)
}

type CashoutHandler struct {
	cashoutService Service
}

func New(cashoutService Service) *CashoutHandler {
	return &CashoutHandler{
		cashoutService: cashoutService,
	}
}

// Request godoc
//
//	@Summary		Request a cash-out
//	@Description	Amount must meet the minimum and fit inside the rider's unsettled earnings.
//	@Tags			Cashouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashoutRequestDTO	true	"Cash-out payload"
//	@Success		201		{object}	dto.CashoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/cashout-requests [post]
func (h *CashoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.CashoutRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cashout, err := h.cashoutService.Request(r.Context(), auth.CallerEmail(r.Context()), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, cashoutservice.ErrAmountBelowMinimum),
			errors.Is(err, cashoutservice.ErrAmountExceedsEarned):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCashoutDTO(cashout))
}

// MyCashouts godoc
//
//	@Summary		List the rider's own cash-out requests
//	@Tags			Cashouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Rider email"
//	@Success		200		{array}		dto.CashoutResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Asking about someone else"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/my-cashouts/{email} [get]
func (h *CashoutHandler) MyCashouts(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	if email != auth.CallerEmail(r.Context()) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
		return
	}

	cashouts, err := h.cashoutService.MyCashouts(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCashoutDTOs(cashouts))
}

// List godoc
//
//	@Summary		List every cash-out request
//	@Description	Paginated, pending requests first.
//	@Tags			Cashouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.CashoutsPageResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/cashout-requests [get]
func (h *CashoutHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	cashouts, total, err := h.cashoutService.List(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CashoutsPageResponseDTO{
		Items: toCashoutDTOs(cashouts),
		Total: total,
	})
}

// Approve godoc
//
//	@Summary		Approve a cash-out request
//	@Description	Marks the request approved and settles the rider's delivered parcels in one transaction. A second approval is a no-op.
//	@Tags			Cashouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.ApproveCashoutResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/admin/approve-cashout/{id} [patch]
func (h *CashoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	settled, err := h.cashoutService.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, cashoutservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveCashoutResponseDTO{
		Message:        "Cashout request approved",
		SettledParcels: settled,
	})
}

func toCashoutDTO(c *domain.CashoutRequest) dto.CashoutResponseDTO {
	return dto.CashoutResponseDTO{
		ID:           c.ID,
		RiderEmail:   c.RiderEmail,
		Amount:       c.Amount,
		Status:       c.Status,
		RequestDate:  c.RequestDate,
		ApprovedDate: c.ApprovedDate,
	}
}

func toCashoutDTOs(cashouts []domain.CashoutRequest) []dto.CashoutResponseDTO {
	out := make([]dto.CashoutResponseDTO, len(cashouts))
	for i := range cashouts {
		out[i] = toCashoutDTO(&cashouts[i])
	}
	return out
}
