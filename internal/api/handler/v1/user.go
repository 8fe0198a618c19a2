package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/request"
	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/response"
	"github.com/mzawadzki/ludoteka-api/internal/api/middleware"
	"github.com/mzawadzki/ludoteka-api/internal/authz"
	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	IsPenalized(ctx context.Context, id uint) (bool, error)
	UpdateUser(ctx context.Context, user domain.User, newPassword string) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	if err = authz.Check(id, authz.SelfOrAdmin, userID); err != nil {
		renderAuthzErr(ctx, err)

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List all users ordered by surname
// @Tags         users
// @Produce      json
// @Success      200      {object}   []domain.User
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleIsPenalized godoc
// @Summary      Check whether a user is penalized
// @Tags         users
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Success      200      {object}   response.PenaltyResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID}/penalized [get]
func (h *UserHandler) HandleIsPenalized(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	if err = authz.Check(id, authz.SelfOrAdmin, userID); err != nil {
		renderAuthzErr(ctx, err)

		return
	}

	penalized, err := h.svc.IsPenalized(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleIsPenalized -> h.svc.IsPenalized -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.PenaltyResponse{
		UserID:    userID,
		Penalized: penalized,
	})
}

// HandleUpdateUser godoc
// @Summary      Update a user's account record
// @Tags         users
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Param        request   body      request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateUserRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), domain.User{
		ID:            userID,
		Name:          req.Name,
		Surname:       req.Surname,
		Email:         req.Email,
		PenaltyPoints: req.PenaltyPoints,
		IsAdmin:       req.IsAdmin,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
