package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/paymentservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateIntent(ctx context.Context, parcelID int, price float64) (string, error)
	RecordSuccess(ctx context.Context, parcelID int, transactionID string) error
	History(ctx context.Context, email string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateIntent godoc
//
//	@Summary		Create a payment intent
//	@Description	Charge amount is converted to minor units and handed to the payment gateway.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateIntentRequestDTO	true	"Intent payload"
//	@Success		200		{object}	dto.CreateIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Price must be positive"
//	@Failure		404		{object}	utils.Response	"Parcel not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIntentRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.ParcelID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrParcelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateIntentResponseDTO{ClientSecret: clientSecret})
}

// PaymentSuccess godoc
//
//	@Summary		Record a confirmed payment
//	@Description	Stores the ledger row and flips the parcel to paid in one transaction. A repeated transaction ID is rejected.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Parcel ID"
//	@Param			request	body		dto.PaymentSuccessRequestDTO	true	"Confirmation payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Parcel already paid"
//	@Failure		404		{object}	utils.Response	"Parcel not found"
//	@Failure		409		{object}	utils.Response	"Payment already recorded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/parcel/payment-success/{id} [patch]
func (h *PaymentHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req dto.PaymentSuccessRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.paymentService.RecordSuccess(r.Context(), id, req.TransactionID); err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrParcelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrDuplicatePayment):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment recorded"})
}

// History godoc
//
//	@Summary		The caller's payment history
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/payment-history [get]
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.History(r.Context(), auth.CallerEmail(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.PaymentResponseDTO, len(payments))
	for i, p := range payments {
		out[i] = dto.PaymentResponseDTO{
			ParcelID:      p.ParcelID,
			TransactionID: p.TransactionID,
			UserEmail:     p.UserEmail,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
