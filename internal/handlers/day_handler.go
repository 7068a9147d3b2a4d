package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"literary-calendar/backend/internal/literary"
	"literary-calendar/backend/internal/lunar"
	"literary-calendar/backend/internal/models"
	"literary-calendar/backend/internal/services"
)

// DayHandler は1日分の表示データ（旧暦・文学引用・イベント）をまとめて返します。
type DayHandler struct {
	eventService *services.EventService
}

// NewDayHandler は新しいDayHandlerを作成します。
func NewDayHandler(eventService *services.EventService) *DayHandler {
	return &DayHandler{eventService: eventService}
}

// DayResponse は GET /api/day のレスポンスです。
type DayResponse struct {
	Date     string          `json:"date"`
	Lunar    lunar.Info      `json:"lunar"`
	Literary literary.Entry  `json:"literary"`
	Events   []*models.Event `json:"events"`
}

// GetDayHandler は GET /api/day?date=YYYY-MM-DD を処理します。
// 旧暦と文学引用はI/Oなしで毎回計算されます。
func (h *DayHandler) GetDayHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
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

	c.JSON(http.StatusOK, DayResponse{
		Date:     date,
		Lunar:    lunar.ForDate(t),
		Literary: literary.ForDate(t),
		Events:   events,
	})
}
