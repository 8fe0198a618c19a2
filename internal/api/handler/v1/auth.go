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
	"github.com/mzawadzki/ludoteka-api/internal/config"
	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/jwthelper"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User, password string) (domain.User, error)
	Confirm(ctx context.Context, userID uint, token string) error
	Login(ctx context.Context, userID uint, password string) (domain.User, error)
	ChangePassword(ctx context.Context, userID uint, newPassword string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new member account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	req := request.RegisterRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		ID:      req.ID,
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleConfirm godoc
// @Summary      Confirm a registered account
// @Tags         auth
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Param        token    path       string  true "confirmation token"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/confirm/{userID}/{token} [get]
func (h *AuthHandler) HandleConfirm(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Confirm(ctx.Request.Context(), userID, ctx.Param("token")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}
		if errors.Is(err, service.ErrInvalidConfirmation) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidConfirmation))

			return
		}

		err = fmt.Errorf("v1.HandleConfirm -> h.svc.Confirm -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "account confirmed",
	})
}

// HandleLogin godoc
// @Summary      Login with member id and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrWrongCredentials))

			return
		}
		if errors.Is(err, service.ErrNotConfirmed) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotConfirmed))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.IsAdmin)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleChangePassword godoc
// @Summary      Change a user's password
// @Tags         auth
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID}/password [post]
func (h *AuthHandler) HandleChangePassword(ctx *gin.Context) {
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

	req := request.ChangePasswordRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.ChangePassword(ctx.Request.Context(), userID, req.Password); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleChangePassword -> h.svc.ChangePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "password changed",
	})
}
