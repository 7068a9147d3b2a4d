// Package services はビジネスロジック層を提供します。
package services

import (
	"errors"

	"literary-calendar/backend/internal/models"
	"literary-calendar/backend/internal/repositories"
)

// 入力バリデーションエラー。ストレージアクセス前に返されます。
var (
	ErrTitleAndDateRequired = errors.New("title and date are required")
	ErrDateRequired         = errors.New("date is required")
	ErrEventIDRequired      = errors.New("event ID is required")
)

// EventService はイベント関連のビジネスロジックを扱います。
// すべての操作は呼び出し元ユーザーのIDでスコープされます。
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService は新しいEventServiceを作成します。
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// GetEventsByDate は指定日付のユーザーのイベントを作成日時の昇順で取得します。
func (s *EventService) GetEventsByDate(userID int, date string) ([]*models.Event, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	return s.eventRepo.FindByDate(userID, date)
}

// CreateEvent は新しいイベントを作成します。
// isTodo / isAllDay が省略された場合は false / true が適用されます。
func (s *EventService) CreateEvent(req *models.EventCreateRequest, userID int) (*models.Event, error) {
	if req.Title == "" || req.Date == "" {
		return nil, ErrTitleAndDateRequired
	}

	event := &models.Event{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		IsTodo:      false,
		IsAllDay:    true,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if req.IsTodo != nil {
		event.IsTodo = *req.IsTodo
	}
	if req.IsAllDay != nil {
		event.IsAllDay = *req.IsAllDay
	}

	return s.eventRepo.Create(event)
}

// UpdateEvent はイベントに部分更新を適用します。
// 他ユーザーのイベント・存在しないIDはどちらも ErrEventNotFound になります。
func (s *EventService) UpdateEvent(id string, userID int, patch *models.EventUpdateRequest) (*models.Event, error) {
	if id == "" {
		return nil, ErrEventIDRequired
	}
	return s.eventRepo.Update(id, userID, patch)
}

// DeleteEvent はイベントを削除します。所有者チェックはリポジトリ側で行われます。
func (s *EventService) DeleteEvent(id string, userID int) error {
	if id == "" {
		return ErrEventIDRequired
	}
	return s.eventRepo.Delete(id, userID)
}
