package handler

import (
	"net/http"
	"testing"

	appidentity "github.com/backoffice/backend/internal/application/identity"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(userRepo identity.UserRepository, session gin.HandlerFunc) *gin.Engine {
	jwtService := auth.NewJWTService(testJWTConfig())
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, zap.NewNop())
	h := NewAuthHandler(authService)

	router := gin.New()
	router.POST("/api/v1/auth/login", h.Login)

	authed := router.Group("/api/v1/auth")
	if session != nil {
		authed.Use(session)
	}
	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
	authed.PUT("/password", h.ChangePassword)
	return router
}

func newActiveUser(t *testing.T, restaurantID uuid.UUID) *identity.User {
	t.Helper()

	user, err := identity.NewUser("chief@example.com", "password123", "Jeanne", identity.RoleChief, &restaurantID)
	require.NoError(t, err)
	return user
}

func TestAuthHandler_Login(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("returns a session token for valid credentials", func(t *testing.T) {
		user := newActiveUser(t, restaurantID)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "chief@example.com").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		router := newAuthRouter(userRepo, nil)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "chief@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, "Bearer", data["token_type"])
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects a wrong password with invalid credentials", func(t *testing.T) {
		user := newActiveUser(t, restaurantID)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "chief@example.com").Return(user, nil)

		router := newAuthRouter(userRepo, nil)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "chief@example.com",
			"password": "wrong-password",
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		router := newAuthRouter(new(MockUserRepository), nil)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email": "not-an-email",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	restaurantID := uuid.New()
	user := newActiveUser(t, restaurantID)

	t.Run("returns the authenticated user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		router := newAuthRouter(userRepo, withClaims(staffClaims(user.ID, restaurantID, identity.RoleChief)))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "chief@example.com", data["email"])
		assert.Equal(t, "chief", data["role"])
	})

	t.Run("answers 401 without a session", func(t *testing.T) {
		router := newAuthRouter(new(MockUserRepository), nil)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("changes the password when the current one matches", func(t *testing.T) {
		user := newActiveUser(t, restaurantID)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		router := newAuthRouter(userRepo, withClaims(staffClaims(user.ID, restaurantID, identity.RoleChief)))
		rec := doJSON(t, router, http.MethodPut, "/api/v1/auth/password", gin.H{
			"current_password": "password123",
			"new_password":     "password456",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, user.VerifyPassword("password456"))
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		user := newActiveUser(t, restaurantID)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		router := newAuthRouter(userRepo, withClaims(staffClaims(user.ID, restaurantID, identity.RoleChief)))
		rec := doJSON(t, router, http.MethodPut, "/api/v1/auth/password", gin.H{
			"current_password": "nope-nope-nope",
			"new_password":     "password456",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PASSWORD", errorCode(t, rec))
	})
}
