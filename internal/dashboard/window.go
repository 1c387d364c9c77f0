package dashboard

import "time"

// Revenue windows are computed in the location of the reference time.
// Window ends are inclusive at the last second of the period.

// DayWindow spans the calendar day of now.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Second)
}

// WeekWindow spans Monday 00:00:00 through Sunday 23:59:59 of the week
// containing now. Sunday is weekday 0, so it needs a -6 day offset to
// reach the Monday that started its week.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 7).Add(-time.Second)
}

// MonthWindow spans the calendar month of now.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Second)
}
