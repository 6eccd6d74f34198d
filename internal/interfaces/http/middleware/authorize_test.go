package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorizedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/guarded", chain...)
	return r
}

func doAuthorizedRequest(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	svc := newTestJWTService()
	authn := JWTAuthMiddleware(svc)

	t.Run("allows a listed role", func(t *testing.T) {
		restaurantID := uuid.New()
		router := newAuthorizedRouter(authn, RequireRoles(identity.RoleChief, identity.RoleStaff))

		w := doAuthorizedRequest(t, router, issueToken(t, svc, "chief", &restaurantID))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unlisted role", func(t *testing.T) {
		restaurantID := uuid.New()
		router := newAuthorizedRouter(authn, RequireRoles(identity.RoleAdmin))

		w := doAuthorizedRequest(t, router, issueToken(t, svc, "staff", &restaurantID))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("rejects a request without a session", func(t *testing.T) {
		router := newAuthorizedRouter(RequireRoles(identity.RoleAdmin))

		w := doAuthorizedRequest(t, router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRestaurant(t *testing.T) {
	svc := newTestJWTService()
	authn := JWTAuthMiddleware(svc)

	t.Run("allows a restaurant-bound caller", func(t *testing.T) {
		restaurantID := uuid.New()
		router := newAuthorizedRouter(authn, RequireRestaurant())

		w := doAuthorizedRequest(t, router, issueToken(t, svc, "staff", &restaurantID))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a caller without a restaurant", func(t *testing.T) {
		router := newAuthorizedRouter(authn, RequireRestaurant())

		w := doAuthorizedRequest(t, router, issueToken(t, svc, "admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCurrentIdentity(t *testing.T) {
	svc := newTestJWTService()
	restaurantID := uuid.New()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(svc))
	r.GET("/whoami", func(c *gin.Context) {
		caller, ok := CurrentIdentity(c)
		require.True(t, ok)
		assert.Equal(t, identity.RoleChief, caller.Role)
		require.NotNil(t, caller.RestaurantID)
		assert.Equal(t, restaurantID, *caller.RestaurantID)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, "chief", &restaurantID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
