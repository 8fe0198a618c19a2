package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/response"
	"github.com/mzawadzki/ludoteka-api/internal/authz"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/jwthelper"
)

// identityKey is where VerifyJWT stores the caller's identity in the gin
// context.
const identityKey = "authIdentity"

var (
	errMissingToken = errors.New("missing or malformed Authorization header")
	errAdminOnly    = errors.New("administrator privileges required")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and attaches the
// verified identity to the context for the handlers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		ctx.Set(identityKey, &authz.Identity{
			UserID:  claims.UserID,
			IsAdmin: claims.IsAdmin,
		})

		ctx.Next()
	}
}

// RequireAdmin guards admin-only route groups. It must run after VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := GetIdentity(ctx)
		if id == nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}
		if !id.IsAdmin {
			response.RenderErr(ctx, response.ErrPermissionDenied(errAdminOnly))

			return
		}

		ctx.Next()
	}
}

// GetIdentity returns the identity VerifyJWT attached, or nil on an
// unauthenticated request.
func GetIdentity(ctx *gin.Context) *authz.Identity {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return nil
	}

	id, ok := value.(*authz.Identity)
	if !ok {
		return nil
	}

	return id
}
