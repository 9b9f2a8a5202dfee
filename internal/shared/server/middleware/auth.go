package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fithire-backend/internal/shared/auth"
	"fithire-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
	userRoleKey  = "userRole"
)

// Identity is the request-scoped authentication context derived from the
// session token. Handlers read the caller only through this value, never
// through ambient state.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// Auth validates the bearer token and stores the caller identity in context.
// Every route behind this middleware requires a signed-in account.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}

		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, claims.Sub)
		c.Set(userRoleKey, claims.Role)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		if claims.Name != "" {
			c.Set(userNameKey, claims.Name)
		}
		c.Next()
	}
}

// RequireRole rejects callers whose account role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != role {
			respond.Error(c, http.StatusForbidden, "forbidden", "this action requires a "+role+" account", nil)
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the caller identity set by the auth middleware.
func IdentityFromContext(c *gin.Context) Identity {
	return Identity{
		UserID: UserIDFromContext(c),
		Email:  stringFromContext(c, userEmailKey),
		Name:   stringFromContext(c, userNameKey),
		Role:   RoleFromContext(c),
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	return stringFromContext(c, userIDKey)
}

// RoleFromContext fetches the account role set by the auth middleware.
func RoleFromContext(c *gin.Context) string {
	return stringFromContext(c, userRoleKey)
}

func stringFromContext(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
