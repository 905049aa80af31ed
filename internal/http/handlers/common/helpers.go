package common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/moderation-backend/internal/dto"
	"github.com/ignatzorin/moderation-backend/internal/http/middleware"
)

var (
	// ErrReviewerNotFound возвращается, когда ревьюер отсутствует в контексте.
	ErrReviewerNotFound = errors.New("ревьюер не найден в контексте")

	// ErrInvalidUUID возвращается при ошибке разбора UUID.
	ErrInvalidUUID = errors.New("неверный формат UUID")
)

// CurrentReviewerID извлекает ID ревьюера из gin контекста.
func CurrentReviewerID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextReviewerIDKey)
	if !exists {
		return uuid.Nil, ErrReviewerNotFound
	}

	reviewerID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrReviewerNotFound
	}

	return reviewerID, nil
}

// VerifiedReporter извлекает проверенную личность репортера, если
// identity middleware её проставил.
func VerifiedReporter(c *gin.Context) (string, bool) {
	raw, exists := c.Get(middleware.ContextReporterKey)
	if !exists {
		return "", false
	}

	reporter, ok := raw.(string)
	return reporter, ok && reporter != ""
}

// ParseUUIDParam разбирает UUID из параметра URL.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// GetPagination извлекает limit/offset из query параметров.
func GetPagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

// RespondError отправляет стандартный ответ с ошибкой.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// RespondValidationError отправляет ответ валидационной ошибки с именем поля.
func RespondValidationError(c *gin.Context, message, field string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Field: field})
}

// RespondUnauthorized отправляет 401.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondNotFound отправляет 404.
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "ресурс не найден"
	}
	RespondError(c, http.StatusNotFound, message)
}

// RespondBadRequest отправляет 400.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondConflict отправляет 409.
func RespondConflict(c *gin.Context, message string) {
	if message == "" {
		message = "конфликт данных"
	}
	RespondError(c, http.StatusConflict, message)
}

// RespondInternalError отправляет 500.
func RespondInternalError(c *gin.Context, message string) {
	if message == "" {
		message = "внутренняя ошибка сервера"
	}
	RespondError(c, http.StatusInternalServerError, message)
}
