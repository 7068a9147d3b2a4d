package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"literary-calendar/backend/internal/models"
)

// バリデーションはストレージアクセスの前に行われるため、
// リポジトリが nil でもエラーが返ることを確認できます。
func TestEventService_ValidationBeforeStorage(t *testing.T) {
	s := NewEventService(nil)

	_, err := s.GetEventsByDate(1, "")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = s.CreateEvent(&models.EventCreateRequest{Date: "2024-03-01"}, 1)
	assert.ErrorIs(t, err, ErrTitleAndDateRequired)

	_, err = s.CreateEvent(&models.EventCreateRequest{Title: "タイトルのみ"}, 1)
	assert.ErrorIs(t, err, ErrTitleAndDateRequired)

	_, err = s.UpdateEvent("", 1, &models.EventUpdateRequest{})
	assert.ErrorIs(t, err, ErrEventIDRequired)

	err = s.DeleteEvent("", 1)
	assert.ErrorIs(t, err, ErrEventIDRequired)
}
