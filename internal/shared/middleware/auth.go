package middleware

import (
	"context"
	"errors"
	"strings"

	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityResolver re-checks the token's subject against storage. A deleted
// user holding a still-valid token must not pass the gate.
type IdentityResolver func(ctx context.Context, userID uuid.UUID) error

// ErrUserNotFound is what resolvers return when the subject no longer exists.
var ErrUserNotFound = errors.New("user not found")

// AuthMiddleware verifies the bearer token and attaches the caller's
// identity to the request context.
func AuthMiddleware(manager *jwt.Manager, resolve IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Pull token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		// 2. Verify and parse. Expired and malformed are reported apart so
		// the frontend can prompt re-login vs reject outright.
		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "Token expired")
			} else {
				response.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// 3. Re-resolve the identity against the repository
		if resolve != nil {
			if err := resolve(c.Request.Context(), userID); err != nil {
				if errors.Is(err, ErrUserNotFound) {
					response.Unauthorized(c, "Unauthorized: user not found")
				} else {
					response.InternalServerError(c, "Failed to verify identity")
				}
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present but never
// rejects. Content creation records its creator this way.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := manager.ValidateToken(parts[1]); err == nil {
				if userID, err := uuid.Parse(claims.UserID); err == nil {
					c.Set("userID", userID)
					c.Set("username", claims.Username)
				}
			}
		}
		c.Next()
	}
}
