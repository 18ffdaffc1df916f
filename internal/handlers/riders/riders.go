package riders

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/riderservice"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Apply(ctx context.Context, app *domain.RiderApplication) (*domain.RiderApplication, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.RiderApplication, int, error)
	Approve(ctx context.Context, id int) (int64, error)
	ToggleStatus(ctx context.Context, id int) (string, error)
	Withdraw(ctx context.Context, id int) error
}

type RiderHandler struct {
	riderService Service
}

func New(riderService Service) *RiderHandler {
	return &RiderHandler{
		riderService: riderService,
	}
}

// Apply godoc
//
//	@Summary		Submit a rider application
//	@Description	One application per email; a repeat submission is rejected.
//	@Tags			Riders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RiderApplicationRequestDTO	true	"Application payload"
//	@Success		201		{object}	dto.RiderApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Application already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/rider-applications [post]
func (h *RiderHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.RiderApplicationRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.riderService.Apply(r.Context(), &domain.RiderApplication{
		Email:    req.Email,
		Name:     req.Name,
		District: req.District,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, riderservice.ErrApplicationExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toApplicationDTO(app))
}

// List godoc
//
//	@Summary		List rider applications
//	@Tags			Riders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.RiderApplicationsPageResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/rider-applications [get]
func (h *RiderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	apps, total, err := h.riderService.List(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]dto.RiderApplicationResponseDTO, len(apps))
	for i := range apps {
		items[i] = toApplicationDTO(&apps[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RiderApplicationsPageResponseDTO{
		Items: items,
		Total: total,
	})
}

// Approve godoc
//
//	@Summary		Approve a rider application
//	@Description	Activates the application and promotes the applicant to rider in one transaction. Approving twice reports zero modified rows.
//	@Tags			Riders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	dto.ApproveRiderResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/rider-applications/approve/{id} [patch]
func (h *RiderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	modified, err := h.riderService.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, riderservice.ErrApplicationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveRiderResponseDTO{
		Message:     "Rider application approved",
		AppModified: modified,
	})
}

// ToggleStatus godoc
//
//	@Summary		Toggle a rider between active and penalty
//	@Tags			Riders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	dto.ToggleRiderStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Application still pending"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/rider-applications/toggle-status/{id} [patch]
func (h *RiderHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	newStatus, err := h.riderService.ToggleStatus(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, riderservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, riderservice.ErrApplicationPending):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ToggleRiderStatusResponseDTO{
		Message:   "Rider status updated",
		NewStatus: newStatus,
	})
}

// Withdraw godoc
//
//	@Summary		Remove a rider application
//	@Description	Deletes the application and drops the user back to the plain role in one transaction.
//	@Tags			Riders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/rider-applications/{id} [delete]
func (h *RiderHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.riderService.Withdraw(r.Context(), id); err != nil {
		if errors.Is(err, riderservice.ErrApplicationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Rider application removed"})
}

func toApplicationDTO(app *domain.RiderApplication) dto.RiderApplicationResponseDTO {
	return dto.RiderApplicationResponseDTO{
		ID:        app.ID,
		Email:     app.Email,
		Name:      app.Name,
		District:  app.District,
		Phone:     app.Phone,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
	}
}
