package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/response"
	"github.com/mzawadzki/ludoteka-api/internal/authz"
)

var errInvalidID = errors.New("invalid id in path")

// renderAuthzErr maps access-control failures onto 401 or 403.
func renderAuthzErr(ctx *gin.Context, err error) {
	if errors.Is(err, authz.ErrUnauthorized) {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	response.RenderErr(ctx, response.ErrPermissionDenied(err))
}

// parseIDParam reads a numeric path parameter. Anything that is not a
// positive integer is rejected before it reaches a service.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}

	return uint(id), nil
}
