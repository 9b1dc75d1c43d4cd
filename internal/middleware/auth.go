package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// IdentityContextKey is the key used to store the authenticated identity in context
const IdentityContextKey = "identity"

var (
	ErrIdentityNotFound = errors.New("identity not found in context")
	ErrInvalidIdentity  = errors.New("invalid identity type")
)

// AuthMiddleware validates the bearer token and resolves the account behind
// it. The token alone is not enough: the user must still exist in the store,
// so deleting an account revokes its outstanding tokens.
func AuthMiddleware(tokens *jwt.TokenManager, users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			metrics.TokenValidations.WithLabelValues("missing").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			_ = c.Error(fmt.Errorf("token validation failed: %w", err)) //nolint:errcheck
			logger.Warn("Token validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))

			if errors.Is(err, jwt.ErrExpiredToken) {
				metrics.TokenValidations.WithLabelValues("expired").Inc()
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired."})
			} else {
				metrics.TokenValidations.WithLabelValues("invalid").Inc()
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			}
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			metrics.TokenValidations.WithLabelValues("user_gone").Inc()
			logger.Warn("Token references unknown user",
				zap.String("user_id", claims.UserID),
				zap.String("client_ip", c.ClientIP()))
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			c.Abort()
			return
		}

		metrics.TokenValidations.WithLabelValues("success").Inc()
		c.Set(IdentityContextKey, models.Identity{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		})
		c.Next()
	}
}

// GetIdentity extracts the authenticated identity from context
func GetIdentity(c *gin.Context) (models.Identity, error) {
	val, exists := c.Get(IdentityContextKey)
	if !exists {
		return models.Identity{}, ErrIdentityNotFound
	}

	identity, ok := val.(models.Identity)
	if !ok {
		return models.Identity{}, ErrInvalidIdentity
	}

	return identity, nil
}
