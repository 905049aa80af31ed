package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/moderation-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextReviewerIDKey = "reviewerID"
	ContextRoleKey       = "role"
	ContextReporterKey   = "reporter"
)

// AuthMiddleware проверяет JWT access токен ревьюера консоли.
func AuthMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		reviewerID, role, err := tokens.ParseAccess(raw)
		if err != nil || reviewerID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "токен невалиден"})
			return
		}

		c.Set(ContextReviewerIDKey, reviewerID)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}
