package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lucky-wave-server/internal/minigames"
	"lucky-wave-server/internal/models"
)

// handleServiceError переводит доменные ошибки в HTTP-статусы.
func (h *GameHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrChapterNotFound),
		errors.Is(err, models.ErrSceneNotFound),
		errors.Is(err, models.ErrSaveNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrChoiceOutOfRange),
		errors.Is(err, models.ErrSlotOutOfRange),
		errors.Is(err, minigames.ErrUnknownAction),
		errors.Is(err, minigames.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInsufficientResource):
		// восстановимая ситуация: клиент показывает уведомление
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNoChoicesPresented),
		errors.Is(err, models.ErrNoActiveMinigame),
		errors.Is(err, models.ErrMinigameActive),
		errors.Is(err, models.ErrMinigameFinished),
		errors.Is(err, minigames.ErrFinished):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("Внутренняя ошибка обработчика", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
