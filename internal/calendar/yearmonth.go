package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date string format used for grid cells
const DateLayout = "2006-01-02"

var errBadDate = errors.New("malformed date")

// ParseDate parses a DateLayout string at local midnight. Unlike
// time.Parse it also accepts what time.Format produces for years outside
// 0..9999, such as "10000-01-01" and "-0001-03-01".
func ParseDate(s string) (time.Time, error) {
	body, sign := s, 1
	if strings.HasPrefix(body, "-") {
		body, sign = body[1:], -1
	}
	parts := strings.Split(body, "-")
	if len(parts) != 3 || len(parts[0]) < 3 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", errBadDate, s)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || strings.HasPrefix(part, "+") {
			return time.Time{}, fmt.Errorf("%w: %q", errBadDate, s)
		}
		nums[i] = n
	}

	t := time.Date(sign*nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local)
	if t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", errBadDate, s)
	}
	return t, nil
}

// YearMonth identifies a calendar month. Month is 1-based; values outside
// 1..12 are carried as-is.
type YearMonth struct {
	Year  int
	Month int
}

// YearMonthOf returns the YearMonth containing t
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// First returns midnight local time on the first day of the month
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.Local)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Label renders the month as "March 2022"
func (ym YearMonth) Label() string {
	if ym.Month < 1 || ym.Month > 12 {
		return fmt.Sprintf("%d/%d", ym.Month, ym.Year)
	}
	return fmt.Sprintf("%s %d", time.Month(ym.Month), ym.Year)
}

// ParseYearMonth parses "YYYY-MM"
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return YearMonthOf(t), nil
}
