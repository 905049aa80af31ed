package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/moderation-backend/internal/dto"
	"github.com/ignatzorin/moderation-backend/internal/http/handlers/common"
	"github.com/ignatzorin/moderation-backend/internal/repository"
	"github.com/ignatzorin/moderation-backend/internal/service"
)

type TriggerHandler struct {
	svc *service.TriggerService
}

func NewTriggerHandler(s *service.TriggerService) *TriggerHandler {
	return &TriggerHandler{svc: s}
}

// List GET /api/triggers
func (h *TriggerHandler) List(c *gin.Context) {
	words, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, words)
}

// Create POST /api/triggers
func (h *TriggerHandler) Create(c *gin.Context) {
	var req dto.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	word, err := h.svc.Add(c.Request.Context(), req.Word, req.Category)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTriggerWord) {
			common.RespondConflict(c, "триггерная фраза уже существует")
			return
		}
		common.RespondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, word)
}

// Delete DELETE /api/triggers/:id
func (h *TriggerHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTriggerNotFound) {
			common.RespondNotFound(c, "триггерная фраза не найдена")
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "триггерная фраза удалена"})
}
