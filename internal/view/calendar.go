// Package view はカレンダー画面のクライアント側状態を管理します。
// 表示中の日付・取得済みイベント・入力操作の遷移を持ち、
// データの正しさはローカルでのマージではなく「操作後の再取得」に依存します。
package view

import (
	"sync"
	"time"

	"literary-calendar/backend/internal/literary"
	"literary-calendar/backend/internal/lunar"
	"literary-calendar/backend/internal/models"
)

// EventSource はカレンダー画面が使うイベントAPIの抽象です。
// HTTP実装は APIClient が提供します。
type EventSource interface {
	ListByDate(date string) ([]models.Event, error)
	Create(req models.EventCreateRequest) (*models.Event, error)
	Update(id string, req models.EventUpdateRequest) (*models.Event, error)
	Delete(id string) error
}

// DateFormat はAPIとの間で使う日付文字列の形式です。
const DateFormat = "2006-01-02"

// Calendar はカレンダー画面の状態機械です。
// 選択日付が変わるたびにその日のイベントを取得し直します。
// 取得完了前に別の日付が選択された場合、古い結果は破棄されます。
type Calendar struct {
	source EventSource

	mu           sync.Mutex
	currentDate  time.Time
	selectedDate string
	events       []models.Event
	fetchSeq     uint64
}

// NewCalendar は指定日を選択した状態のCalendarを作成します。
// 初回のイベント取得もここで行われます。
func NewCalendar(source EventSource, date time.Time) (*Calendar, error) {
	c := &Calendar{source: source, currentDate: date}
	if err := c.SelectDate(date.Format(DateFormat)); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectDate は選択日付を変更し、その日のイベントを取得します。
// 取得中にさらに新しい選択が行われていた場合、この取得結果は捨てられます。
func (c *Calendar) SelectDate(date string) error {
	c.mu.Lock()
	c.selectedDate = date
	if t, err := time.Parse(DateFormat, date); err == nil {
		c.currentDate = t
	}
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	events, err := c.source.ListByDate(date)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		// より新しい選択に追い越された取得結果は反映しない
		return nil
	}
	c.events = events
	return nil
}

// refetch は選択中の日付のイベントを取り直します。すべての変更操作の後に呼ばれます。
func (c *Calendar) refetch() error {
	c.mu.Lock()
	date := c.selectedDate
	c.mu.Unlock()
	return c.SelectDate(date)
}

// NextDay は翌日に移動します。
func (c *Calendar) NextDay() error { return c.shiftDay(1) }

// PrevDay は前日に移動します。
func (c *Calendar) PrevDay() error { return c.shiftDay(-1) }

func (c *Calendar) shiftDay(offset int) error {
	c.mu.Lock()
	next := c.currentDate.AddDate(0, 0, offset)
	c.mu.Unlock()
	return c.SelectDate(next.Format(DateFormat))
}

// Today は今日に移動します。
func (c *Calendar) Today(now time.Time) error {
	return c.SelectDate(now.Format(DateFormat))
}

// AddTodo は選択中の日付にTodoを追加し、イベントを取り直します。
// 空のタイトルは何もせず成功扱いになります（画面側の挙動に合わせる）。
func (c *Calendar) AddTodo(title string) error {
	return c.addEvent(title, true)
}

// AddMemo は選択中の日付にメモを追加し、イベントを取り直します。
func (c *Calendar) AddMemo(title string) error {
	return c.addEvent(title, false)
}

func (c *Calendar) addEvent(title string, isTodo bool) error {
	if title == "" {
		return nil
	}
	c.mu.Lock()
	date := c.selectedDate
	c.mu.Unlock()

	if _, err := c.source.Create(models.EventCreateRequest{
		Title:  title,
		Date:   date,
		IsTodo: &isTodo,
	}); err != nil {
		return err
	}
	return c.refetch()
}

// ToggleTodo はTodoの完了状態を反転し、イベントを取り直します。
func (c *Calendar) ToggleTodo(id string) error {
	c.mu.Lock()
	var completed bool
	found := false
	for _, e := range c.events {
		if e.ID == id {
			completed = !e.Completed
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return c.refetch()
	}

	if _, err := c.source.Update(id, models.EventUpdateRequest{Completed: &completed}); err != nil {
		return err
	}
	return c.refetch()
}

// Remove はイベントを削除し、イベントを取り直します。
func (c *Calendar) Remove(id string) error {
	if err := c.source.Delete(id); err != nil {
		return err
	}
	return c.refetch()
}

// SelectedDate は選択中の日付文字列を返します。
func (c *Calendar) SelectedDate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedDate
}

// Events は選択中の日付の全イベントを返します。
func (c *Calendar) Events() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Todos は選択中の日付のTodoだけを返します。
func (c *Calendar) Todos() []models.Event {
	return c.filter(true)
}

// Memos は選択中の日付のメモだけを返します。
// メモに完了状態の概念はないため、Completed は参照しません。
func (c *Calendar) Memos() []models.Event {
	return c.filter(false)
}

func (c *Calendar) filter(isTodo bool) []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Event
	for _, e := range c.events {
		if e.IsTodo == isTodo {
			out = append(out, e)
		}
	}
	return out
}

// Lunar は選択中の日付の旧暦情報を返します。
func (c *Calendar) Lunar() lunar.Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lunar.ForDate(c.currentDate)
}

// Literary は選択中の日付の文学引用を返します。
func (c *Calendar) Literary() literary.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return literary.ForDate(c.currentDate)
}
