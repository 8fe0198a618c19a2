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
	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

type CatalogueService interface {
	SaveGame(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error)
	GetGame(ctx context.Context, id uint) (domain.BoardGame, error)
	ListGames(ctx context.Context, userID uint) ([]domain.GameListing, error)
	ListGamesAdmin(ctx context.Context) ([]domain.GameAdminListing, error)
	DeleteGame(ctx context.Context, id uint) error
}

type BoardGameHandler struct {
	svc CatalogueService
}

func NewBoardGameHandler(svc CatalogueService) *BoardGameHandler {
	return &BoardGameHandler{
		svc: svc,
	}
}

func isCatalogueValidationErr(err error) bool {
	return errors.Is(err, service.ErrInvalidPlayerRange) ||
		errors.Is(err, service.ErrInvalidPlaytimeRange) ||
		errors.Is(err, service.ErrInvalidWeight)
}

// HandleListGames godoc
// @Summary      List the catalogue with rental status and favourites
// @Tags         games
// @Produce      json
// @Success      200      {object}   []response.GameListing
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games [get]
func (h *BoardGameHandler) HandleListGames(ctx *gin.Context) {
	id := middleware.GetIdentity(ctx)

	listings, err := h.svc.ListGames(ctx.Request.Context(), id.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGames -> h.svc.ListGames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewGameListings(listings))
}

// HandleGetGame godoc
// @Summary      Get a board game by ID
// @Tags         games
// @Produce      json
// @Param        gameID   path       integer true "game ID"
// @Success      200      {object}   domain.BoardGame
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games/{gameID} [get]
func (h *BoardGameHandler) HandleGetGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	game, err := h.svc.GetGame(ctx.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGameNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetGame -> h.svc.GetGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, game)
}

// HandleListGamesAdmin godoc
// @Summary      List full game records with their active rentals
// @Tags         games
// @Produce      json
// @Success      200      {object}   []response.GameAdminListing
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/games [get]
func (h *BoardGameHandler) HandleListGamesAdmin(ctx *gin.Context) {
	listings, err := h.svc.ListGamesAdmin(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListGamesAdmin -> h.svc.ListGamesAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewGameAdminListings(listings))
}

// HandleCreateGame godoc
// @Summary      Add a board game to the catalogue
// @Tags         games
// @Produce      json
// @Param        request   body      request.SaveBoardGameRequest true "request body"
// @Success      201      {object}   domain.BoardGame
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games [post]
func (h *BoardGameHandler) HandleCreateGame(ctx *gin.Context) {
	game, ok := h.bindGame(ctx, 0)
	if !ok {
		return
	}

	created, err := h.svc.SaveGame(ctx.Request.Context(), game)
	if err != nil {
		if isCatalogueValidationErr(err) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateGame -> h.svc.SaveGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateGame godoc
// @Summary      Update a board game
// @Tags         games
// @Produce      json
// @Param        gameID   path       integer true "game ID"
// @Param        request   body      request.SaveBoardGameRequest true "request body"
// @Success      200      {object}   domain.BoardGame
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games/{gameID} [put]
func (h *BoardGameHandler) HandleUpdateGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	game, ok := h.bindGame(ctx, gameID)
	if !ok {
		return
	}

	updated, err := h.svc.SaveGame(ctx.Request.Context(), game)
	if err != nil {
		if isCatalogueValidationErr(err) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGameNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateGame -> h.svc.SaveGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteGame godoc
// @Summary      Delete a board game
// @Tags         games
// @Produce      json
// @Param        gameID   path       integer true "game ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games/{gameID} [delete]
func (h *BoardGameHandler) HandleDeleteGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteGame(ctx.Request.Context(), gameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGameNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGame -> h.svc.DeleteGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *BoardGameHandler) bindGame(ctx *gin.Context, gameID uint) (domain.BoardGame, bool) {
	req := request.SaveBoardGameRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.BoardGame{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.BoardGame{}, false
	}

	return domain.BoardGame{
		ID:             gameID,
		Title:          req.Title,
		Weight:         req.Weight,
		PhotoFilename:  req.PhotoFilename,
		MinPlayers:     req.MinPlayers,
		MaxPlayers:     req.MaxPlayers,
		MinPlaytime:    req.MinPlaytime,
		MaxPlaytime:    req.MaxPlaytime,
		AdditionalInfo: req.AdditionalInfo,
	}, true
}
