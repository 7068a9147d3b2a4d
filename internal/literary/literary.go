// Package literary は日付ごとの文学引用を提供します。
// キーは "MM-DD" 形式で年に依存しません。テーブルはプロセス内の静的データです。
package literary

import (
	"fmt"
	"time"
)

// Entry は1日分の文学引用です。
type Entry struct {
	Name   string `json:"name"`   // 登場人物名
	Source string `json:"source"` // 出典作品
	Quote  string `json:"quote"`  // 引用文
}

// DefaultEntry はテーブルに該当日がない場合に返されるエントリーです。
var DefaultEntry = Entry{
	Name:   "未名人物",
	Source: "文学长河",
	Quote:  "在书页的缝隙中，总有一位角色在等待被阅读。",
}

var mapping = map[string]Entry{
	"02-18": {
		Name:   "嘉莉",
		Source: "《嘉莉妹妹》",
		Quote:  "她有着青春的活力和一些想象。她的谈情说爱的神秘日子还在后头。她可以思量她喜欢做的事情，喜欢穿的衣服和喜欢去观光的地方。",
	},
	"02-19": {
		Name:   "蓓姬·夏普",
		Source: "《名利场》",
		Quote:  "克立斯普先生对夏普小姐一见倾心，就因为被她的眼睛从学生座穿过契绥克教堂射向讲经台的那一瞥所击倒。",
	},
	"02-20": {
		Name:   "玛戈",
		Source: "《黑暗中的笑声》",
		Quote:  "她目不旁视地继续慢慢走路，只是用眼角朝旁边瞟过去，像兔子转动耳朵一样。",
	},
	"02-21": {
		Name:   "玛格丽特",
		Source: "《茶花女》",
		Quote:  "她的眼神中常常带着一种忧郁的神情，但当她微笑时，她的面容又显得那么天真烂漫。",
	},
	"02-22": {
		Name:   "司马丽",
		Source: "《九级浪》",
		Quote:  "读书，绘画和治病是这种生活的主要内容。她手不停挥地练习素描，如果晚上不用热毛巾烫手腕，夜里就会痛得睡不着觉。",
	},
}

// KeyForDate は日付を "MM-DD" 形式のキーに変換します（ゼロ埋め、年非依存）。
func KeyForDate(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
}

// ForKey はキーに対応するエントリーを返します。
// 該当日がない場合は DefaultEntry が返ります（ミスはエラーではなく通常系）。
func ForKey(key string) Entry {
	if entry, ok := mapping[key]; ok {
		return entry
	}
	return DefaultEntry
}

// ForDate は指定日のエントリーを返します。
func ForDate(t time.Time) Entry {
	return ForKey(KeyForDate(t))
}
