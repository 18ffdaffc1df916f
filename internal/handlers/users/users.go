package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dakbox/courier/internal/domain"
	"github.com/dakbox/courier/internal/dto"
	"github.com/dakbox/courier/internal/service/userservice"
	"github.com/dakbox/courier/pkg/auth"
	"github.com/dakbox/courier/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	MintToken(email string) (string, error)
	EnsureUser(ctx context.Context, email, name string) (bool, error)
	GetRole(ctx context.Context, email string) (string, error)
	ListUsers(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error)
	ListRiders(ctx context.Context) ([]domain.User, error)
	MakeAdmin(ctx context.Context, id int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// MintToken godoc
//
//	@Summary		Issue a bearer token
//	@Description	Mint a long-lived access token for an identity asserted by the external provider.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Identity payload"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/jwt [post]
func (h *UserHandler) MintToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.userService.MintToken(req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Store the user on first sight; repeat registrations are reported, not rejected.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterUserRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.RegisterUserResponseDTO	"User already exists"
//	@Success		201		{object}	dto.RegisterUserResponseDTO	"User created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequestDTO
	if err := utils.DecodeStrict(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	inserted, err := h.userService.EnsureUser(r.Context(), req.Email, req.Name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !inserted {
		utils.RespondWithJSON(w, http.StatusOK, dto.RegisterUserResponseDTO{
			Message:  "User already exists",
			Inserted: false,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterUserResponseDTO{
		Message:  "User successfully registered",
		Inserted: true,
	})
}

// GetUserRole godoc
//
//	@Summary		Get a user's role
//	@Description	Return the stored role. Callers can only ask about their own email.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	query		string	true	"Email to look up"
//	@Success		200		{object}	dto.UserRoleResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Asking about someone else"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/user-role [get]
func (h *UserHandler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(r.URL.Query().Get("email"))
	caller := auth.CallerEmail(r.Context())
	if email == "" || email != caller {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden access")
		return
	}

	role, err := h.userService.GetRole(r.Context(), email)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserRoleResponseDTO{Role: role})
}

// AdminList godoc
//
//	@Summary		List users
//	@Description	Paginated user list with optional email search, for the admin panel.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Email substring"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.UsersPageResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/admin-list [get]
func (h *UserHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)
	users, total, err := h.userService.ListUsers(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsersPageResponseDTO{
		Items: toUserDTOs(users),
		Total: total,
	})
}

// MakeAdmin godoc
//
//	@Summary		Promote a user to admin
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/make-admin/{id} [patch]
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.userService.MakeAdmin(r.Context(), id); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User promoted to admin"})
}

// RidersList godoc
//
//	@Summary		List onboarded riders
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/riders-list [get]
func (h *UserHandler) RidersList(w http.ResponseWriter, r *http.Request) {
	riders, err := h.userService.ListRiders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTOs(riders))
}

func toUserDTOs(users []domain.User) []dto.UserResponseDTO {
	out := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		out[i] = dto.UserResponseDTO{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
	}
	return out
}
