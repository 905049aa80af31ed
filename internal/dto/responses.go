package dto

import (
	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/moderation"
)

// ErrorResponse — стандартный ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// SuccessResponse — стандартный ответ об успехе.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// IntakeResponse — итог приёма контента: результат скана и созданная
// запись, если политика потребовала её создать.
type IntakeResponse struct {
	Scan   moderation.ScanResult  `json:"scan"`
	Record *models.FlaggedContent `json:"record,omitempty"`
}

// ProjectionStatus — состояние проекции решения во внешнее хранилище.
// При частичном успехе (локально применено, внешне — нет) несёт путь и
// причину, чтобы консоль могла повторить.
type ProjectionStatus struct {
	OK    bool   `json:"ok"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// DecisionResponse — итог применения решения ревьюера.
type DecisionResponse struct {
	Record     *models.FlaggedContent `json:"record"`
	Projection ProjectionStatus       `json:"projection"`
}
