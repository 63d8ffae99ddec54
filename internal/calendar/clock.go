package calendar

import "time"

// Clock supplies the current time so "today" can be pinned in tests
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant
type FixedClock struct {
	FixedNow time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.FixedNow
}

func (c *FixedClock) SetNow(now time.Time) {
	c.FixedNow = now
}

// Today returns the day of month of the clock's current local date
func Today(clock Clock) int {
	return clock.Now().In(time.Local).Day()
}

// IsToday reports whether dateString is the clock's current local date and,
// if so, returns its day of month.
func IsToday(clock Clock, dateString string) (int, bool) {
	now := clock.Now().In(time.Local)
	if now.Format(DateLayout) != dateString {
		return 0, false
	}
	return now.Day(), true
}
