package literary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyForDate_ZeroPadded(t *testing.T) {
	key := KeyForDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "03-05", key)

	key = KeyForDate(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "12-25", key)
}

func TestForKey_Hit(t *testing.T) {
	entry := ForKey("02-18")
	assert.Equal(t, "嘉莉", entry.Name)
	assert.Equal(t, "《嘉莉妹妹》", entry.Source)
	assert.NotEmpty(t, entry.Quote)
}

func TestForKey_MissReturnsDefault(t *testing.T) {
	entry := ForKey("07-31")
	assert.Equal(t, DefaultEntry, entry)

	// 不正なキーもエラーにはならずデフォルトが返る
	entry = ForKey("not-a-key")
	assert.Equal(t, DefaultEntry, entry)
}

func TestForDate_YearIndependent(t *testing.T) {
	// 同じ月日なら年が違っても同じエントリー
	a := ForDate(time.Date(2020, time.February, 19, 0, 0, 0, 0, time.UTC))
	b := ForDate(time.Date(2025, time.February, 19, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, a, b)
	assert.Equal(t, "蓓姬·夏普", a.Name)
}
