package util

import (
	"time"
)

// LastUpdateLayout 最后更新时间格式（日-月-年 时:分）
const LastUpdateLayout = "02-01-2006 15:04"

// MustParseDuration 将字符串转换成时段
func MustParseDuration(s string) time.Duration {
	value, err := time.ParseDuration(s)
	if err != nil {
		panic("Can't parse duration `" + s + "`: " + err.Error())
	}
	return value
}

// FormatLastUpdate 按本地时钟格式化
func FormatLastUpdate(t time.Time) string {
	return t.Local().Format(LastUpdateLayout)
}
