// Package handler отдает игровой API поверх gin.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lucky-wave-server/internal/content"
	"lucky-wave-server/internal/minigames"
	"lucky-wave-server/internal/models"
	"lucky-wave-server/internal/service"
)

// GameHandler is the HTTP surface of the narrative engine.
type GameHandler struct {
	logger  *zap.Logger
	service *service.SessionService
	library *content.Library
	hub     *Hub
}

// NewGameHandler создает обработчик. hub может быть nil.
func NewGameHandler(logger *zap.Logger, svc *service.SessionService, library *content.Library, hub *Hub) *GameHandler {
	return &GameHandler{
		logger:  logger.Named("GameHandler"),
		service: svc,
		library: library,
		hub:     hub,
	}
}

// RegisterRoutes подключает все маршруты игрового API.
func (h *GameHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/chapters", h.listChapters)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", h.createSession)
			sessions.GET("/:id", h.getSession)
			sessions.DELETE("/:id", h.endSession)

			sessions.POST("/:id/advance", h.advance)
			sessions.POST("/:id/skip", h.skip)
			sessions.POST("/:id/choice", h.selectChoice)
			sessions.POST("/:id/continue", h.continueChapter)

			sessions.POST("/:id/minigame", h.minigameAction)
			sessions.POST("/:id/minigame/exit", h.exitMinigame)

			sessions.GET("/:id/saves", h.listSaves)
			sessions.POST("/:id/saves/:slot", h.save)
			sessions.POST("/:id/saves/:slot/load", h.load)
			sessions.DELETE("/:id/saves/:slot", h.deleteSave)
			sessions.POST("/:id/quicksave", h.quickSave)
			sessions.POST("/:id/quickload", h.quickLoad)
		}
	}
	if h.hub != nil {
		router.GET("/ws/:id", h.serveWS)
	}
}

func (h *GameHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *GameHandler) slot(c *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid slot"})
		return 0, false
	}
	return slot, true
}

func (h *GameHandler) listChapters(c *gin.Context) {
	ids := h.library.Chapters()
	out := make([]ChapterResponse, 0, len(ids))
	for _, id := range ids {
		ch := h.library.GetChapter(id)
		out = append(out, ChapterResponse{
			ID:          string(ch.ID),
			Title:       ch.Title,
			Description: ch.Description,
			Scenes:      len(ch.Scenes),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *GameHandler) createSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "player_id and chapter are required"})
		return
	}
	view, err := h.service.CreateSession(req.PlayerID, models.ChapterID(req.Chapter))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *GameHandler) getSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.service.GetView(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) endSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.service.EndSession(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) advance(c *gin.Context) {
	h.sessionAction(c, h.service.Advance)
}

func (h *GameHandler) skip(c *gin.Context) {
	h.sessionAction(c, h.service.Skip)
}

func (h *GameHandler) continueChapter(c *gin.Context) {
	h.sessionAction(c, h.service.Continue)
}

func (h *GameHandler) exitMinigame(c *gin.Context) {
	h.sessionAction(c, h.service.ExitMinigame)
}

// sessionAction — общий каркас для действий без тела запроса.
func (h *GameHandler) sessionAction(c *gin.Context, action func(uuid.UUID) (*service.SessionView, error)) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := action(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.notify(view)
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) selectChoice(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req ChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "index is required"})
		return
	}
	view, err := h.service.SelectChoice(id, *req.Index)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.notify(view)
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) minigameAction(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req MinigameActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "action is required"})
		return
	}
	view, err := h.service.MinigameAction(id, minigames.Action(req.Action))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.notify(view)
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) save(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	summary, err := h.service.Save(c.Request.Context(), id, slot)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *GameHandler) load(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	view, err := h.service.Load(c.Request.Context(), id, slot)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.notify(view)
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) listSaves(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	list, err := h.service.ListSaves(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GameHandler) deleteSave(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSave(c.Request.Context(), id, slot); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) quickSave(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	summary, err := h.service.QuickSave(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *GameHandler) quickLoad(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.service.QuickLoad(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.notify(view)
	c.JSON(http.StatusOK, view)
}

// notify рассылает свежий вид сессии подписчикам по WebSocket.
func (h *GameHandler) notify(view *service.SessionView) {
	if h.hub != nil && view != nil {
		h.hub.Broadcast(view.SessionID, view)
	}
}
