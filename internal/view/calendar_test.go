package view

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literary-calendar/backend/internal/models"
)

// fakeSource はテスト用のインメモリEventSourceです。
type fakeSource struct {
	mu     sync.Mutex
	byDate map[string][]models.Event
	nextID int

	// gateDate のListByDate呼び出しはenteredを通知した後、gateが閉じるまで待つ
	gateDate string
	gate     chan struct{}
	entered  chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{byDate: map[string][]models.Event{}}
}

func (f *fakeSource) ListByDate(date string) ([]models.Event, error) {
	if f.gate != nil && date == f.gateDate {
		f.entered <- struct{}{}
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Event, len(f.byDate[date]))
	copy(out, f.byDate[date])
	return out, nil
}

func (f *fakeSource) Create(req models.EventCreateRequest) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e := models.Event{
		ID:        fmt.Sprintf("evt-%d", f.nextID),
		Title:     req.Title,
		Date:      req.Date,
		IsAllDay:  true,
		CreatedAt: time.Now(),
	}
	if req.IsTodo != nil {
		e.IsTodo = *req.IsTodo
	}
	if req.IsAllDay != nil {
		e.IsAllDay = *req.IsAllDay
	}
	f.byDate[req.Date] = append(f.byDate[req.Date], e)
	return &e, nil
}

func (f *fakeSource) Update(id string, req models.EventUpdateRequest) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for date, events := range f.byDate {
		for i := range events {
			if events[i].ID == id {
				if req.Completed != nil {
					events[i].Completed = *req.Completed
				}
				if req.Title != nil {
					events[i].Title = *req.Title
				}
				f.byDate[date] = events
				e := events[i]
				return &e, nil
			}
		}
	}
	return nil, errors.New("event not found")
}

func (f *fakeSource) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for date, events := range f.byDate {
		for i := range events {
			if events[i].ID == id {
				f.byDate[date] = append(events[:i], events[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("event not found")
}

func newTestCalendar(t *testing.T, src EventSource) *Calendar {
	c, err := NewCalendar(src, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestSelectDate_FetchesEvents(t *testing.T) {
	src := newFakeSource()
	_, err := src.Create(models.EventCreateRequest{Title: "読書", Date: "2024-03-02"})
	require.NoError(t, err)

	c := newTestCalendar(t, src)
	assert.Empty(t, c.Events())

	require.NoError(t, c.SelectDate("2024-03-02"))
	assert.Equal(t, "2024-03-02", c.SelectedDate())
	require.Len(t, c.Events(), 1)
	assert.Equal(t, "読書", c.Events()[0].Title)
}

func TestAddTodo_CreatesAndRefetches(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	require.NoError(t, c.AddTodo("買い物"))
	require.NoError(t, c.AddMemo("覚え書き"))

	todos := c.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "買い物", todos[0].Title)
	assert.True(t, todos[0].IsTodo)

	memos := c.Memos()
	require.Len(t, memos, 1)
	assert.Equal(t, "覚え書き", memos[0].Title)
	assert.False(t, memos[0].IsTodo)
}

func TestAddTodo_EmptyTitleIsNoop(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	require.NoError(t, c.AddTodo(""))
	assert.Empty(t, c.Events())
}

func TestToggleTodo(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	require.NoError(t, c.AddTodo("掃除"))
	id := c.Todos()[0].ID

	require.NoError(t, c.ToggleTodo(id))
	assert.True(t, c.Todos()[0].Completed)

	require.NoError(t, c.ToggleTodo(id))
	assert.False(t, c.Todos()[0].Completed)
}

func TestRemove(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	require.NoError(t, c.AddTodo("破棄する"))
	id := c.Todos()[0].ID

	require.NoError(t, c.Remove(id))
	assert.Empty(t, c.Events())
}

func TestNextDayPrevDay(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	require.NoError(t, c.NextDay())
	assert.Equal(t, "2024-03-02", c.SelectedDate())

	require.NoError(t, c.PrevDay())
	require.NoError(t, c.PrevDay())
	assert.Equal(t, "2024-02-29", c.SelectedDate())

	require.NoError(t, c.Today(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", c.SelectedDate())
}

func TestSelectDate_StaleFetchDiscarded(t *testing.T) {
	src := newFakeSource()
	_, err := src.Create(models.EventCreateRequest{Title: "古い日", Date: "2024-03-10"})
	require.NoError(t, err)
	_, err = src.Create(models.EventCreateRequest{Title: "新しい日", Date: "2024-03-11"})
	require.NoError(t, err)

	c := newTestCalendar(t, src)

	// 2024-03-10 の取得を途中で止め、その間に 2024-03-11 を選択する
	src.gateDate = "2024-03-10"
	src.gate = make(chan struct{})
	src.entered = make(chan struct{}, 1)

	done := make(chan error, 1)
	go func() {
		done <- c.SelectDate("2024-03-10")
	}()
	<-src.entered // 古い取得がListByDateに入ったのを確認

	require.NoError(t, c.SelectDate("2024-03-11"))
	close(src.gate) // 古い取得を完了させる
	require.NoError(t, <-done)

	// 追い越された取得結果は破棄され、最後に選択した日のイベントが残る
	assert.Equal(t, "2024-03-11", c.SelectedDate())
	require.Len(t, c.Events(), 1)
	assert.Equal(t, "新しい日", c.Events()[0].Title)
}

func TestLunarAndLiterary(t *testing.T) {
	src := newFakeSource()
	c := newTestCalendar(t, src)

	// 2024-02-18 は文学テーブルに存在する日
	require.NoError(t, c.SelectDate("2024-02-18"))
	assert.Equal(t, "嘉莉", c.Literary().Name)
	assert.NotEmpty(t, c.Lunar().LunarMonth)
	assert.NotEmpty(t, c.Lunar().LunarDay)
}
