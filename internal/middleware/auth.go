// Package middleware provides shared gin middleware.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tdnguyen-dev/sanbong/pkg/response"
	"github.com/tdnguyen-dev/sanbong/pkg/token"
)

// AuthUserIDKey is the gin context key holding the authenticated user id.
const AuthUserIDKey = "auth_user_id"

// Auth validates the bearer token and stores the actor's user id in the context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, "UNAUTHORIZED", "authorization header is required", http.StatusUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(c, "UNAUTHORIZED", "expected: Bearer <token>", http.StatusUnauthorized)
			c.Abort()
			return
		}

		userID, err := token.Validate(parts[1], jwtSecret)
		if err != nil {
			response.Error(c, "UNAUTHORIZED", "invalid or expired token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(AuthUserIDKey, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id from the context.
func UserID(c *gin.Context) (uint, error) {
	v, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user id not found in context")
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errors.New("user id has unexpected type")
	}
	return id, nil
}
