package calendar

import (
	"time"
)

// DayCell is one entry of the month grid
type DayCell struct {
	DateString     string // YYYY-MM-DD, unique within a grid
	DayOfMonth     int
	IsCurrentMonth bool
	IsWeekend      bool
	IsToday        bool
}

// Date returns the cell's date at local midnight
func (c DayCell) Date() time.Time {
	t, err := ParseDate(c.DateString)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Grid is an ordered run of full weeks covering a month
type Grid struct {
	YearMonth YearMonth
	Cells     []DayCell
}

// Weeks splits the grid into rows of seven cells
func (g Grid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// Index returns the position of dateString in the grid, or -1
func (g Grid) Index(dateString string) int {
	for i, c := range g.Cells {
		if c.DateString == dateString {
			return i
		}
	}
	return -1
}

// Builder computes month grids. The zero value starts weeks on Sunday and
// reads the system clock.
type Builder struct {
	FirstWeekday time.Weekday
	Clock        Clock
}

var defaultBuilder = Builder{}

func (b Builder) clock() Clock {
	if b.Clock == nil {
		return SystemClock{}
	}
	return b.Clock
}

// Weekdays returns the weekday header order starting at FirstWeekday
func (b Builder) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = (b.FirstWeekday + time.Weekday(i)) % 7
	}
	return days
}

// column returns the zero-based grid column of t
func (b Builder) column(t time.Time) int {
	return (int(t.Weekday()) - int(b.FirstWeekday) + 7) % 7
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. Months outside
// 1..12 are normalized the way time.Date does.
func DaysInMonth(year, month int) int {
	first := YearMonth{Year: year, Month: month}.First()
	switch first.Month() {
	case time.February:
		if isLeapYear(first.Year()) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func (b Builder) cell(t time.Time, currentMonth bool) DayCell {
	ds := t.Format(DateLayout)
	_, today := IsToday(b.clock(), ds)
	return DayCell{
		DateString:     ds,
		DayOfMonth:     t.Day(),
		IsCurrentMonth: currentMonth,
		IsWeekend:      isWeekend(t),
		IsToday:        today,
	}
}

// CurrentMonthDays returns one cell per day of the month
func (b Builder) CurrentMonthDays(year, month int) []DayCell {
	first := YearMonth{Year: year, Month: month}.First()
	n := DaysInMonth(year, month)
	days := make([]DayCell, n)
	for i := 0; i < n; i++ {
		days[i] = b.cell(first.AddDate(0, 0, i), true)
	}
	return days
}

// PreviousMonthDays returns the trailing days of the previous month needed
// to fill the first week up to current[0].
func (b Builder) PreviousMonthDays(year, month int, current []DayCell) []DayCell {
	if len(current) == 0 {
		return nil
	}
	first := YearMonth{Year: year, Month: month}.First()
	n := b.column(first)
	days := make([]DayCell, n)
	for i := 0; i < n; i++ {
		days[i] = b.cell(first.AddDate(0, 0, i-n), false)
	}
	return days
}

// NextMonthDays returns the leading days of the following month needed to
// complete the last week.
func (b Builder) NextMonthDays(year, month int, current []DayCell) []DayCell {
	if len(current) == 0 {
		return nil
	}
	last := YearMonth{Year: year, Month: month}.First().AddDate(0, 0, len(current)-1)
	n := 6 - b.column(last)
	days := make([]DayCell, n)
	for i := 0; i < n; i++ {
		days[i] = b.cell(last.AddDate(0, 0, i+1), false)
	}
	return days
}

// Build concatenates previous, current and next month days
func (b Builder) Build(ym YearMonth) Grid {
	current := b.CurrentMonthDays(ym.Year, ym.Month)
	prev := b.PreviousMonthDays(ym.Year, ym.Month, current)
	next := b.NextMonthDays(ym.Year, ym.Month, current)

	cells := make([]DayCell, 0, len(prev)+len(current)+len(next))
	cells = append(cells, prev...)
	cells = append(cells, current...)
	cells = append(cells, next...)
	return Grid{YearMonth: ym, Cells: cells}
}

func CurrentMonthDays(year, month int) []DayCell {
	return defaultBuilder.CurrentMonthDays(year, month)
}

func PreviousMonthDays(year, month int, current []DayCell) []DayCell {
	return defaultBuilder.PreviousMonthDays(year, month, current)
}

func NextMonthDays(year, month int, current []DayCell) []DayCell {
	return defaultBuilder.NextMonthDays(year, month, current)
}

// BuildGrid builds a Sunday-first grid against the system clock
func BuildGrid(ym YearMonth) Grid {
	return defaultBuilder.Build(ym)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendDay reports whether dateString falls on Saturday or Sunday.
// Unparsable strings are never weekend days.
func IsWeekendDay(dateString string) bool {
	t, err := ParseDate(dateString)
	if err != nil {
		return false
	}
	return isWeekend(t)
}
