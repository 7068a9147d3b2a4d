// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nats-io/nuid"

	"literary-calendar/backend/internal/models"
)

// ErrEventNotFound はイベントが見つからない場合のエラーです。
// 他ユーザーのイベントへのアクセスも同じエラーになります（存在の漏洩を防ぐため）。
var ErrEventNotFound = errors.New("event not found")

// EventRepository はイベントのデータベース操作を行うための構造体です。
type EventRepository struct {
	DB *sql.DB
}

// NewEventRepository は新しいEventRepositoryインスタンスを作成します。
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = "id, user_id, title, description, date, is_todo, is_all_day, start_time, end_time, completed, created_at, updated_at"

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.IsTodo,
		&e.IsAllDay,
		&e.StartTime,
		&e.EndTime,
		&e.Completed,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create は新しいイベントをデータベースに挿入します。
// IDはここで生成され、作成後の行を読み直して返します。
func (r *EventRepository) Create(e *models.Event) (*models.Event, error) {
	e.ID = nuid.Next()

	query := `INSERT INTO events
		(id, user_id, title, description, date, is_todo, is_all_day, start_time, end_time, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.Exec(query,
		e.ID, e.UserID, e.Title, e.Description, e.Date,
		e.IsTodo, e.IsAllDay, e.StartTime, e.EndTime, e.Completed,
	)
	if err != nil {
		log.Printf("Failed to insert event: %v", err)
		return nil, fmt.Errorf("could not insert event: %w", err)
	}

	// created_at / updated_at はDBが設定するため、読み直して返す
	return r.FindByID(e.ID, e.UserID)
}

// FindByDate は指定ユーザー・指定日付のイベントを作成日時の昇順で取得します。
func (r *EventRepository) FindByDate(userID int, date string) ([]*models.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE user_id = ? AND date = ? ORDER BY created_at ASC, id ASC"

	rows, err := r.DB.Query(query, userID, date)
	if err != nil {
		log.Printf("Failed to query events: %v", err)
		return nil, fmt.Errorf("could not query events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			log.Printf("Failed to scan event: %v", err)
			return nil, fmt.Errorf("could not scan event: %w", err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// FindByID は指定IDのイベントを取得します。
// 所有者チェックもクエリに含まれるため、他ユーザーのイベントは ErrEventNotFound になります。
func (r *EventRepository) FindByID(id string, userID int) (*models.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE id = ? AND user_id = ?"

	e, err := scanEvent(r.DB.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		log.Printf("Failed to query event by ID: %v", err)
		return nil, fmt.Errorf("could not query event: %w", err)
	}

	return e, nil
}

// Update は指定IDのイベントに部分更新を適用します。
// nil でないフィールドだけが SET 句に含まれます。user_id は更新対象外です。
func (r *EventRepository) Update(id string, userID int, patch *models.EventUpdateRequest) (*models.Event, error) {
	// 所有者スコープで存在確認（MySQLは同値更新で rows affected = 0 を返すため、
	// rows affected では存在判定できない）
	if _, err := r.FindByID(id, userID); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.IsTodo != nil {
		add("is_todo", *patch.IsTodo)
	}
	if patch.IsAllDay != nil {
		add("is_all_day", *patch.IsAllDay)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}

	if len(sets) > 0 {
		query := "UPDATE events SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
		args = append(args, id, userID)
		if _, err := r.DB.Exec(query, args...); err != nil {
			log.Printf("Failed to update event: %v", err)
			return nil, fmt.Errorf("could not update event: %w", err)
		}
	}

	// 更新後のイベントを取得して返す
	return r.FindByID(id, userID)
}

// Delete は指定IDのイベントを削除します。
// 存在しないID・他ユーザーのIDはどちらも ErrEventNotFound になります。
func (r *EventRepository) Delete(id string, userID int) error {
	query := "DELETE FROM events WHERE id = ? AND user_id = ?"

	result, err := r.DB.Exec(query, id, userID)
	if err != nil {
		log.Printf("Failed to delete event: %v", err)
		return fmt.Errorf("could not delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
