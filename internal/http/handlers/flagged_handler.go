package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/moderation-backend/internal/dto"
	"github.com/ignatzorin/moderation-backend/internal/http/handlers/common"
	"github.com/ignatzorin/moderation-backend/internal/moderation"
	"github.com/ignatzorin/moderation-backend/internal/pkg/apperror"
	"github.com/ignatzorin/moderation-backend/internal/repository"
	"github.com/ignatzorin/moderation-backend/internal/service"
)

type FlaggedHandler struct {
	svc *service.ModerationService
}

func NewFlaggedHandler(s *service.ModerationService) *FlaggedHandler {
	return &FlaggedHandler{svc: s}
}

// Intake POST /api/flagged — скан контента и, по политике, создание записи.
func (h *FlaggedHandler) Intake(c *gin.Context) {
	var req dto.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	reportedBy := req.ReportedBy
	if verified, ok := common.VerifiedReporter(c); ok {
		// Проверенная личность от gateway имеет приоритет над телом.
		reportedBy = verified
	}

	in := moderation.FlagInput{
		ParentType: req.ParentType,
		PostID:     req.PostID,
		CommentID:  req.CommentID,
		ReplyID:    req.ReplyID,
		Content:    req.Content,
		Reason:     req.Reason,
		ReportedBy: reportedBy,
	}

	result, err := h.svc.Intake(c.Request.Context(), in)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrCodeValidation {
			common.RespondValidationError(c, appErr.Message, appErr.Field)
			return
		}
		c.Error(err)
		return
	}

	status := http.StatusOK
	if result.Record != nil {
		status = http.StatusCreated
	}
	c.JSON(status, dto.IntakeResponse{
		Scan:   result.Scan,
		Record: result.Record,
	})
}

// List GET /api/flagged — записи в порядке создания, с фильтрами.
func (h *FlaggedHandler) List(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	filter := repository.FlaggedFilter{
		PostID: c.Query("post_id"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("reviewed"); raw != "" {
		reviewed := raw == "true" || raw == "1"
		filter.Reviewed = &reviewed
	}

	records, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get GET /api/flagged/:id
func (h *FlaggedHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFlaggedNotFound) {
			common.RespondNotFound(c, "flagged запись не найдена")
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Decide PUT /api/flagged/:id/decision — применение решения ревьюера.
// Частичный успех (локально применено, проекция не удалась) — это 200 с
// projection.ok=false: локальное хранилище — источник истины, а консоль
// получает путь и причину для повтора.
func (h *FlaggedHandler) Decide(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.svc.ApplyDecision(c.Request.Context(), id, *req.Visible)
	if err != nil {
		if errors.Is(err, repository.ErrFlaggedNotFound) {
			common.RespondNotFound(c, "flagged запись не найдена")
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && result != nil {
			// Локальная мутация уже применена, сообщаем о частичном успехе.
			c.JSON(http.StatusOK, dto.DecisionResponse{
				Record: result.Record,
				Projection: dto.ProjectionStatus{
					OK:    false,
					Path:  appErr.Path,
					Error: appErr.Message,
				},
			})
			return
		}

		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DecisionResponse{
		Record: result.Record,
		Projection: dto.ProjectionStatus{
			OK:   result.Projected,
			Path: result.Path,
		},
	})
}
