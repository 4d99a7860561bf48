package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authService "github.com/pointward/gateway/internal/auth/service"
	"github.com/pointward/gateway/internal/testutil"
)

func setupGuardedRouter(
	t *testing.T,
	codec authService.TokenCodec,
	level authDomain.AccessLevel,
) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", RequireLevel(codec, level, testutil.DiscardLogger()), func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"entity_id": claims.EntityID})
	})
	return router
}

func TestRequireLevel(t *testing.T) {
	codec := authService.NewTokenCodec("guard-secret", time.Hour)
	router := setupGuardedRouter(t, codec, authDomain.CashierLevel)

	doRequest := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("MissingTokenIsUnauthenticated", func(t *testing.T) {
		w := doRequest("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeaderIsUnauthenticated", func(t *testing.T) {
		w := doRequest("Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest("Bearer ")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageTokenIsForbidden", func(t *testing.T) {
		w := doRequest("Bearer not-a-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("WrongTierIsForbidden", func(t *testing.T) {
		token, err := codec.Issue("user-1", authDomain.UserLevel, nil)
		require.NoError(t, err)

		w := doRequest("Bearer " + token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("TamperedSignatureIsForbidden", func(t *testing.T) {
		token, err := codec.Issue("cashier-1", authDomain.CashierLevel, nil)
		require.NoError(t, err)

		// Valid payload (passes the peek), broken signature.
		tampered := token[:len(token)-2] + "xx"
		w := doRequest("Bearer " + tampered)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("MatchingTierIsAdmitted", func(t *testing.T) {
		token, err := codec.Issue("cashier-1", authDomain.CashierLevel, map[string]string{"shop_id": "shop-1"})
		require.NoError(t, err)

		w := doRequest("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cashier-1")
	})

	t.Run("BearerPrefixIsCaseInsensitive", func(t *testing.T) {
		token, err := codec.Issue("cashier-1", authDomain.CashierLevel, nil)
		require.NoError(t, err)

		w := doRequest("bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetClaims(t *testing.T) {
	t.Run("EmptyContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := GetClaims(req.Context())
		assert.False(t, ok)
	})
}
