package dashboard

import (
	"context"
	"net/http"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/pkg/utils"
)

type Service interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats godoc
//
//	@Summary		Admin dashboard aggregates
//	@Description	Counts and sums across users, parcels and payments, gathered concurrently.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.DashboardStats
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/admin/dashboard-stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
