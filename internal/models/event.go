// Package modelsはEventとUserを定義します。
package models

import "time"

// Event はカレンダー上の1件の予定（Todoまたはメモ）を表します。
// JSONタグ: クライアントとの通信用 (camelCase、フロントエンドの payload に合わせる)
type Event struct {
	ID          string    `json:"id"`                    // 主キー (作成時に生成される不透明ID)
	UserID      int       `json:"userId"`                // 所有ユーザーID (作成時に確定、変更不可)
	Title       string    `json:"title"`                 // タイトル（必須）
	Description *string   `json:"description"`           // 説明 (省略可)
	Date        string    `json:"date"`                  // "YYYY-MM-DD" 形式の日付文字列
	IsTodo      bool      `json:"isTodo"`                // true=Todo / false=メモ
	IsAllDay    bool      `json:"isAllDay"`              // 終日フラグ (デフォルト true)
	StartTime   *string   `json:"startTime"`             // 開始時刻 (現在のビューでは未使用)
	EndTime     *string   `json:"endTime"`               // 終了時刻 (現在のビューでは未使用)
	Completed   bool      `json:"completed"`             // 完了状態 (IsTodo=true のときのみ意味を持つ)
	CreatedAt   time.Time `json:"createdAt"`             // 作成日時 (デフォルトのソートキー)
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`   // 更新日時
}

// EventCreateRequest はイベント作成リクエストのボディです。
// IsTodo / IsAllDay はポインタにして「省略」と「false指定」を区別します。
// 省略時のデフォルトは IsTodo=false, IsAllDay=true。
type EventCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	IsTodo      *bool   `json:"isTodo,omitempty"`
	IsAllDay    *bool   `json:"isAllDay,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
}

// EventUpdateRequest は部分更新 (PUT) のボディです。
// nil のフィールドは「変更しない」を意味します。
type EventUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	IsTodo      *bool   `json:"isTodo,omitempty"`
	IsAllDay    *bool   `json:"isAllDay,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
