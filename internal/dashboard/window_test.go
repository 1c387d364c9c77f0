package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestDayWindow(t *testing.T) {
	from, to := DayWindow(date(2024, time.May, 22, 15, 30, 0))
	assert.Equal(t, date(2024, time.May, 22, 0, 0, 0), from)
	assert.Equal(t, date(2024, time.May, 22, 23, 59, 59), to)
}

func TestWeekWindow_MidWeek(t *testing.T) {
	// Wednesday 2024-05-22 belongs to the week Mon 20th .. Sun 26th
	from, to := WeekWindow(date(2024, time.May, 22, 10, 0, 0))
	assert.Equal(t, date(2024, time.May, 20, 0, 0, 0), from)
	assert.Equal(t, date(2024, time.May, 26, 23, 59, 59), to)
}

func TestWeekWindow_SundayBelongsToItsOwnWeek(t *testing.T) {
	// Sunday 2024-05-19 closes the week that started Mon 13th
	from, to := WeekWindow(date(2024, time.May, 19, 10, 0, 0))
	assert.Equal(t, date(2024, time.May, 13, 0, 0, 0), from)
	assert.Equal(t, date(2024, time.May, 19, 23, 59, 59), to)
}

func TestWeekWindow_MondayStartsTheWeek(t *testing.T) {
	from, to := WeekWindow(date(2024, time.May, 20, 0, 0, 0))
	assert.Equal(t, date(2024, time.May, 20, 0, 0, 0), from)
	assert.Equal(t, date(2024, time.May, 26, 23, 59, 59), to)
}

func TestWeekWindow_SundayOrderExcludedFromNextWeek(t *testing.T) {
	// an order created Sunday 2024-05-19 falls outside the week of
	// Wednesday 2024-05-22
	createdAt := date(2024, time.May, 19, 10, 0, 0)
	from, to := WeekWindow(date(2024, time.May, 22, 12, 0, 0))

	inWindow := !createdAt.Before(from) && !createdAt.After(to)
	assert.False(t, inWindow)
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(date(2024, time.February, 10, 8, 0, 0))
	assert.Equal(t, date(2024, time.February, 1, 0, 0, 0), from)
	assert.Equal(t, date(2024, time.February, 29, 23, 59, 59), to)
}
