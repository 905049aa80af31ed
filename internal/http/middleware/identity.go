package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Заголовок с проверенным идентификатором пользователя. Его проставляет
// внешний identity провайдер (gateway), мы трактуем значение как
// непрозрачную строку и сами ничего не проверяем.
const VerifiedUserHeader = "X-Verified-User"

// IdentityMiddleware извлекает проверенную личность репортера.
// strict=true: intake без заголовка отклоняется (401).
// strict=false: заголовок опционален, reported_by разрешено брать из тела.
func IdentityMiddleware(strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		reporter := c.GetHeader(VerifiedUserHeader)

		if reporter == "" && strict {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется проверенная личность репортера"})
			return
		}

		if reporter != "" {
			c.Set(ContextReporterKey, reporter)
		}
		c.Next()
	}
}
