package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator abstracts the JWT service so handlers can be tested with a
// stub validator.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Used on booking creation so an issuer identity is
// recorded when a staff token accompanies the request.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
