// Package dateutil treats calendar dates as time.Time values pinned to midnight UTC.
package dateutil

import (
	"time"
)

const Layout = "2006-01-02"

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysBetween counts calendar days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

func AddDays(t time.Time, days int) time.Time {
	return DateOf(t).AddDate(0, 0, days)
}

// WeekdayIndex maps Monday to 0 and Sunday to 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
