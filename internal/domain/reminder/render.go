package reminder

import (
	"strings"
	"time"
)

var weekdayNames = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// Render expands the recognized template placeholders with values taken from
// the given instant: ${날짜} → date, ${시간} → time, ${요일} → weekday name.
// Unrecognized placeholders pass through unchanged; rendering never fails.
func Render(template string, now time.Time) string {
	out := strings.ReplaceAll(template, "${날짜}", now.Format("2006-01-02"))
	out = strings.ReplaceAll(out, "${시간}", now.Format("15:04"))
	out = strings.ReplaceAll(out, "${요일}", weekdayNames[int(now.Weekday())]+"요일")
	return out
}
