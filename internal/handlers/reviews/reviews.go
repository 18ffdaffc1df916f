package reviews

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/reviewservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListForRider(ctx context.Context, riderEmail string) ([]domain.Review, error)
	Stats(ctx context.Context, riderEmail string) (*domain.RiderStats, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Submit godoc
//
//	@Summary		Review a rider
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review payload"
//	@Success		201		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Rating out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/reviews [post]
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.Submit(r.Context(), &domain.Review{
		RiderEmail: req.RiderEmail,
		UserEmail:  auth.CallerEmail(r.Context()),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, reviewservice.ErrInvalidRating) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReviewDTO(review))
}

// RiderReviews godoc
//
//	@Summary		List a rider's reviews
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Rider email"
//	@Success		200		{array}		dto.ReviewResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/rider-reviews/{email} [get]
func (h *ReviewHandler) RiderReviews(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	reviews, err := h.reviewService.ListForRider(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.ReviewResponseDTO, len(reviews))
	for i := range reviews {
		out[i] = toReviewDTO(&reviews[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// RiderStats godoc
//
//	@Summary		Aggregate rating figures for a rider
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Rider email"
//	@Success		200		{object}	domain.RiderStats
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/rider-stats/{email} [get]
func (h *ReviewHandler) RiderStats(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	stats, err := h.reviewService.Stats(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

func toReviewDTO(review *domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:         review.ID,
		RiderEmail: review.RiderEmail,
		UserEmail:  review.UserEmail,
		Rating:     review.Rating,
		Comment:    review.Comment,
		ReviewDate: review.ReviewDate,
	}
}
