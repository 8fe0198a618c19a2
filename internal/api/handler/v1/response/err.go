package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error body. StatusCode drives the HTTP status and is
// not serialized.
type Err struct {
	StatusCode int    `json:"-"`
	RequestID  string `json:"request_id,omitempty"`
	Msg        string `json:"error"`
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Msg:        err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, err)
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err)
}

// ErrInternalServerError logs the cause and hides it from the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	e := NewErr(http.StatusInternalServerError, err)
	e.Msg = "internal server error occurred"

	return e
}

// RenderErr writes the error response and aborts the handler chain. The
// request id lets a sanitized body be correlated with the log line.
func RenderErr(ctx *gin.Context, err *Err) {
	err.RequestID = requestid.Get(ctx)

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
