// Package lunar は日付に旧暦の注記（旧暦月日・干支・節気）を付けます。
// 暦の計算は lunar-go に委譲し、このパッケージはラベルへの変換だけを行います。
package lunar

import (
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// Info はある日付の旧暦情報です。計算に失敗した場合もゼロ値ではなく
// プレースホルダー入りの値が返ります。
type Info struct {
	LunarMonth string `json:"lunarMonth"` // 旧暦の月名 (正..腊)
	LunarDay   string `json:"lunarDay"`   // 旧暦の日 (初一..三十)
	GanZhi     string `json:"ganZhi"`     // 年の干支
	Zodiac     string `json:"zodiac"`     // 年の生肖
	Term       string `json:"term"`       // 節気名。節気の日以外は空文字列
}

// 旧暦の月名テーブル。lunar-go の月番号 (1..12、閏月は負) を添字に引きます。
var monthNames = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}

const placeholder = "--"

// ForDate は指定日の旧暦情報を返します。
// lunar-go が不正な日付で panic した場合はプレースホルダー結果を返し、
// 呼び出し元にはエラーを伝播させません。
func ForDate(t time.Time) (info Info) {
	defer func() {
		if r := recover(); r != nil {
			info = Info{LunarMonth: placeholder, LunarDay: placeholder}
		}
	}()

	solar := calendar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day())
	l := solar.GetLunar()

	// 閏月は負の月番号で表現されるため、絶対値を取って元の月に寄せる
	month := l.GetMonth()
	if month < 0 {
		month = -month
	}
	idx := month - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 11 {
		idx = 11
	}

	return Info{
		LunarMonth: monthNames[idx],
		LunarDay:   l.GetDayInChinese(),
		GanZhi:     l.GetYearInGanZhi(),
		Zodiac:     l.GetYearShengXiao(),
		Term:       l.GetJieQi(),
	}
}

// Format は "正月初一 · 立春" のような表示用文字列を返します。
func Format(t time.Time) string {
	info := ForDate(t)
	if info.Term != "" {
		return info.LunarMonth + "月" + info.LunarDay + " · " + info.Term
	}
	return info.LunarMonth + "月" + info.LunarDay
}
