// Package handlers はHTTPハンドラーを提供します。
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"literary-calendar/backend/internal/models"
	"literary-calendar/backend/internal/repositories"
	"literary-calendar/backend/internal/services"
)

// EventHandler はイベント関連のハンドラーを管理します。
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler は新しいEventHandlerを作成します。
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// currentUserID はAuthMiddlewareが設定したユーザーIDをコンテキストから取り出します。
func currentUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := userIDVal.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type in context"})
		return 0, false
	}
	return userID, true
}

// GetEventsHandler は GET /api/events?date=YYYY-MM-DD を処理します。
func (h *EventHandler) GetEventsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	events, err := h.eventService.GetEventsByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// CreateEventHandler は POST /api/events を処理します。
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	event, err := h.eventService.CreateEvent(&req, userID)
	if err != nil {
		if errors.Is(err, services.ErrTitleAndDateRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and date are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event to database"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEventHandler は PUT /api/events?id=xxx を処理します。
// ボディは部分パッチで、含まれるフィールドだけが更新されます。
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}

	var patch models.EventUpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	event, err := h.eventService.UpdateEvent(id, userID, &patch)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEventHandler は DELETE /api/events?id=xxx を処理します。
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}

	if err := h.eventService.DeleteEvent(id, userID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
