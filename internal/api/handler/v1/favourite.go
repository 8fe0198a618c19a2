package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/response"
	"github.com/mzawadzki/ludoteka-api/internal/api/middleware"
)

type FavouriteService interface {
	Add(ctx context.Context, userID, gameID uint) error
	Remove(ctx context.Context, userID, gameID uint) error
}

type FavouriteHandler struct {
	svc FavouriteService
}

func NewFavouriteHandler(svc FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{
		svc: svc,
	}
}

// HandleAddFavourite godoc
// @Summary      Bookmark a game for the caller
// @Tags         favourites
// @Produce      json
// @Param        gameID   path       integer true "game ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /favourites/{gameID} [put]
func (h *FavouriteHandler) HandleAddFavourite(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	if err = h.svc.Add(ctx.Request.Context(), id.UserID, gameID); err != nil {
		err = fmt.Errorf("v1.HandleAddFavourite -> h.svc.Add -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRemoveFavourite godoc
// @Summary      Remove a bookmark
// @Tags         favourites
// @Produce      json
// @Param        gameID   path       integer true "game ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /favourites/{gameID} [delete]
func (h *FavouriteHandler) HandleRemoveFavourite(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	if err = h.svc.Remove(ctx.Request.Context(), id.UserID, gameID); err != nil {
		err = fmt.Errorf("v1.HandleRemoveFavourite -> h.svc.Remove -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
