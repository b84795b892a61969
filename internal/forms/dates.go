package forms

import (
	"time"

	"storage-equipment/pkg/validation"
)

// wireLayouts — форматы, в которых бэкенд может прислать дату.
var wireLayouts = []string{time.RFC3339Nano, time.RFC3339, validation.DateLayout}

// FormatDateForInput переводит дату с сервера в вид YYYY-MM-DD для поля ввода.
// Всё считается в UTC, поэтому 2024-03-10T00:00:00Z остаётся 2024-03-10.
// Нераспознанное значение даёт пустую строку.
func FormatDateForInput(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(validation.DateLayout)
		}
	}
	return ""
}

// ParseInputDate разбирает значение поля ввода как календарную дату в UTC.
func ParseInputDate(value string) (time.Time, error) {
	return time.ParseInLocation(validation.DateLayout, value, time.UTC)
}

// Today — сегодняшняя дата в формате поля ввода.
func Today(now time.Time) string {
	return now.UTC().Format(validation.DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
