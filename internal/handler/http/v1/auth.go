package v1

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/syket-git/Elaka/internal/config"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/service"
)

const userIDKey = "user_id"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			apiKey = bearerToken(c)
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// IdentityMiddleware определяет пользователя по токену сессии и кладёт его id в контекст gin
func IdentityMiddleware(identity service.IdentityProvider, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := identity.ResolveUser(c.Request.Context(), bearerToken(c))
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) {
				kind := models.ErrKindUnauthenticated
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kind, "message": kind.Message()})
				return
			}
			log.WithError(err).Error("Failed to resolve session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
