package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzawadzki/ludoteka-api/internal/api/middleware"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/jwthelper"
)

const signingKey = "test-signing-key"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	verifyJWT := middleware.NewAuthenticator(signingKey).VerifyJWT()

	router.GET("/protected", verifyJWT, func(ctx *gin.Context) {
		id := middleware.GetIdentity(ctx)
		ctx.JSON(http.StatusOK, gin.H{
			"user_id":  id.UserID,
			"is_admin": id.IsAdmin,
		})
	})
	router.GET("/admin", verifyJWT, middleware.RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestVerifyJWT(t *testing.T) {
	router := newTestRouter()

	t.Run("missing token", func(t *testing.T) {
		recorder := doRequest(t, router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		recorder := doRequest(t, router, "/protected", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwthelper.GenerateTokenWithTTL([]byte(signingKey), 7, false, -time.Minute)
		require.NoError(t, err)

		recorder := doRequest(t, router, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("another-key"), 7, false)
		require.NoError(t, err)

		recorder := doRequest(t, router, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(signingKey), 7, false)
		require.NoError(t, err)

		recorder := doRequest(t, router, "/protected", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"user_id": 7, "is_admin": false}`, recorder.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	router := newTestRouter()

	t.Run("member is rejected", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(signingKey), 7, false)
		require.NoError(t, err)

		recorder := doRequest(t, router, "/admin", token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(signingKey), 1, true)
		require.NoError(t, err)

		recorder := doRequest(t, router, "/admin", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
