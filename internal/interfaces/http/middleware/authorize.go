package middleware

import (
	"net/http"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is the authenticated caller as established by the session
// middleware. RestaurantID is nil for admin accounts.
type Identity struct {
	UserID       uuid.UUID
	Role         identity.Role
	RestaurantID *uuid.UUID
}

// CurrentIdentity resolves the caller from the session claims set by
// JWTAuthMiddleware. It returns false when the request carries no valid
// session or the claims are malformed.
func CurrentIdentity(c *gin.Context) (*Identity, bool) {
	claims := GetJWTClaims(c)
	if claims == nil {
		return nil, false
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, false
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return nil, false
	}
	restaurantID, err := claims.GetRestaurantUUID()
	if err != nil {
		return nil, false
	}

	return &Identity{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
	}, true
}

// RequireRoles gates a route group on the caller's role. Every guarded
// operation goes through this one check instead of per-handler role
// tests.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		caller, ok := CurrentIdentity(c)
		if !ok {
			abortForbidden(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if !allowed[caller.Role] {
			abortForbidden(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role for this operation")
			return
		}
		c.Next()
	}
}

// RequireRestaurant rejects callers without a restaurant binding. Routes
// that operate on per-restaurant data (stock, batches, receptions) need
// a concrete restaurant even for otherwise privileged accounts.
func RequireRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentIdentity(c)
		if !ok {
			abortForbidden(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if caller.RestaurantID == nil {
			abortForbidden(c, http.StatusForbidden, "FORBIDDEN", "This operation requires a restaurant account")
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
