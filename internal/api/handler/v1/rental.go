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

type RentalService interface {
	SaveRental(ctx context.Context, id *authz.Identity, rentalID, gameID, userID uint, rentalDate, returnDate string) (domain.Rental, error)
	MarkPickedUp(ctx context.Context, rentalID uint) (domain.Rental, error)
	RequestExtension(ctx context.Context, id *authz.Identity, rentalID uint, newDate string) (domain.Rental, error)
	AcceptExtension(ctx context.Context, rentalID uint) (domain.Rental, error)
	WithdrawExtension(ctx context.Context, id *authz.Identity, rentalID uint) (domain.Rental, error)
	ArchiveRental(ctx context.Context, id *authz.Identity, rentalID uint) error
	DeleteRental(ctx context.Context, rentalID uint) error
	ListRentals(ctx context.Context) ([]domain.RentalListing, error)
	ListUserRentals(ctx context.Context, userID uint, markFavourites bool) ([]domain.RentalListing, error)
	ListHistory(ctx context.Context) ([]domain.HistoryListing, error)
	ListUserHistory(ctx context.Context, userID uint, markFavourites bool) ([]domain.HistoryListing, error)
	DeleteHistoryEntry(ctx context.Context, id uint) error
}

type RentalHandler struct {
	svc RentalService
}

func NewRentalHandler(svc RentalService) *RentalHandler {
	return &RentalHandler{
		svc: svc,
	}
}

// renderRentalErr maps the rental service's sentinels onto HTTP statuses.
// Anything unrecognized is a server fault.
func renderRentalErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrRentalNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrRentalNotFound))
	case errors.Is(err, service.ErrGameAlreadyRented):
		response.RenderErr(ctx, response.ErrConflict(service.ErrGameAlreadyRented))
	case errors.Is(err, service.ErrInvalidDate):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidDate))
	case errors.Is(err, service.ErrNoExtensionPending):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoExtensionPending))
	case errors.Is(err, authz.ErrUnauthorized), errors.Is(err, authz.ErrForbidden):
		renderAuthzErr(ctx, err)
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleCreateRental godoc
// @Summary      Reserve a game
// @Tags         rentals
// @Produce      json
// @Param        request   body      request.SaveRentalRequest true "request body"
// @Success      201      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals [post]
func (h *RentalHandler) HandleCreateRental(ctx *gin.Context) {
	req := request.SaveRentalRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	rental, err := h.svc.SaveRental(ctx.Request.Context(), id, 0, req.GameID, req.UserID, req.RentalDate, req.ReturnDate)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleCreateRental -> h.svc.SaveRental", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.NewRental(rental))
}

// HandleUpdateRental godoc
// @Summary      Rewrite an existing rental
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Param        request   body      request.SaveRentalRequest true "request body"
// @Success      200      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID} [put]
func (h *RentalHandler) HandleUpdateRental(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.SaveRentalRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	rental, err := h.svc.SaveRental(ctx.Request.Context(), id, rentalID, req.GameID, req.UserID, req.RentalDate, req.ReturnDate)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleUpdateRental -> h.svc.SaveRental", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRental(rental))
}

// HandleMarkPickedUp godoc
// @Summary      Record that the renter collected the game
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Success      200      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID}/pickup [post]
func (h *RentalHandler) HandleMarkPickedUp(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rental, err := h.svc.MarkPickedUp(ctx.Request.Context(), rentalID)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleMarkPickedUp -> h.svc.MarkPickedUp", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRental(rental))
}

// HandleRequestExtension godoc
// @Summary      File a return-date extension request
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Param        request   body      request.ExtensionRequest true "request body"
// @Success      200      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID}/extension [post]
func (h *RentalHandler) HandleRequestExtension(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ExtensionRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	rental, err := h.svc.RequestExtension(ctx.Request.Context(), id, rentalID, req.ExtensionDate)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleRequestExtension -> h.svc.RequestExtension", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRental(rental))
}

// HandleAcceptExtension godoc
// @Summary      Accept a pending extension request
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Success      200      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID}/extension/accept [post]
func (h *RentalHandler) HandleAcceptExtension(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rental, err := h.svc.AcceptExtension(ctx.Request.Context(), rentalID)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleAcceptExtension -> h.svc.AcceptExtension", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRental(rental))
}

// HandleWithdrawExtension godoc
// @Summary      Withdraw a pending extension request
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Success      200      {object}   response.Rental
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID}/extension [delete]
func (h *RentalHandler) HandleWithdrawExtension(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	rental, err := h.svc.WithdrawExtension(ctx.Request.Context(), id, rentalID)
	if err != nil {
		renderRentalErr(ctx, "v1.HandleWithdrawExtension -> h.svc.WithdrawExtension", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRental(rental))
}

// HandleArchiveRental godoc
// @Summary      Close a rental and move it into history
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID}/archive [post]
func (h *RentalHandler) HandleArchiveRental(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	id := middleware.GetIdentity(ctx)
	if err = h.svc.ArchiveRental(ctx.Request.Context(), id, rentalID); err != nil {
		renderRentalErr(ctx, "v1.HandleArchiveRental -> h.svc.ArchiveRental", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteRental godoc
// @Summary      Delete a rental without archiving it
// @Tags         rentals
// @Produce      json
// @Param        rentalID   path     integer true "rental ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/{rentalID} [delete]
func (h *RentalHandler) HandleDeleteRental(ctx *gin.Context) {
	rentalID, err := parseIDParam(ctx, "rentalID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteRental(ctx.Request.Context(), rentalID); err != nil {
		renderRentalErr(ctx, "v1.HandleDeleteRental -> h.svc.DeleteRental", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListRentals godoc
// @Summary      List all active rentals
// @Tags         rentals
// @Produce      json
// @Success      200      {object}   []response.RentalListing
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals [get]
func (h *RentalHandler) HandleListRentals(ctx *gin.Context) {
	listings, err := h.svc.ListRentals(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRentals -> h.svc.ListRentals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewRentalListings(listings))
}

// HandleListMyRentals godoc
// @Summary      List the caller's active rentals
// @Tags         rentals
// @Produce      json
// @Success      200      {object}   []response.RentalListing
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rentals/mine [get]
func (h *RentalHandler) HandleListMyRentals(ctx *gin.Context) {
	id := middleware.GetIdentity(ctx)

	listings, err := h.svc.ListUserRentals(ctx.Request.Context(), id.UserID, true)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyRentals -> h.svc.ListUserRentals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewRentalListings(listings))
}

// HandleListUserRentals godoc
// @Summary      List one user's active rentals
// @Tags         rentals
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Success      200      {object}   []response.RentalListing
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID}/rentals [get]
func (h *RentalHandler) HandleListUserRentals(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	listings, err := h.svc.ListUserRentals(ctx.Request.Context(), userID, false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUserRentals -> h.svc.ListUserRentals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewRentalListings(listings))
}

// HandleListHistory godoc
// @Summary      List all archived rentals
// @Tags         history
// @Produce      json
// @Success      200      {object}   []response.HistoryListing
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /history [get]
func (h *RentalHandler) HandleListHistory(ctx *gin.Context) {
	listings, err := h.svc.ListHistory(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListHistory -> h.svc.ListHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewHistoryListings(listings))
}

// HandleListMyHistory godoc
// @Summary      List the caller's archived rentals
// @Tags         history
// @Produce      json
// @Success      200      {object}   []response.HistoryListing
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /history/mine [get]
func (h *RentalHandler) HandleListMyHistory(ctx *gin.Context) {
	id := middleware.GetIdentity(ctx)

	listings, err := h.svc.ListUserHistory(ctx.Request.Context(), id.UserID, true)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyHistory -> h.svc.ListUserHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewHistoryListings(listings))
}

// HandleListUserHistory godoc
// @Summary      List one user's archived rentals
// @Tags         history
// @Produce      json
// @Param        userID   path       integer true "user ID"
// @Success      200      {object}   []response.HistoryListing
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID}/history [get]
func (h *RentalHandler) HandleListUserHistory(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	listings, err := h.svc.ListUserHistory(ctx.Request.Context(), userID, false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUserHistory -> h.svc.ListUserHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewHistoryListings(listings))
}

// HandleDeleteHistoryEntry godoc
// @Summary      Delete an archived rental record
// @Tags         history
// @Produce      json
// @Param        entryID   path      integer true "history entry ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /history/{entryID} [delete]
func (h *RentalHandler) HandleDeleteHistoryEntry(ctx *gin.Context) {
	entryID, err := parseIDParam(ctx, "entryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteHistoryEntry(ctx.Request.Context(), entryID); err != nil {
		if errors.Is(err, service.ErrHistoryEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrHistoryEntryNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteHistoryEntry -> h.svc.DeleteHistoryEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
