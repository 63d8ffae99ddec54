package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned when a dropdown value is not an integer
var ErrInvalidSelection = errors.New("invalid selection")

// Back steps one month earlier, wrapping January to December of the
// previous year.
func Back(ym YearMonth) YearMonth {
	next := YearMonth{Year: ym.Year, Month: ym.Month - 1}
	if next.Month == 0 {
		next.Month = 12
		next.Year = ym.Year - 1
	}
	return next
}

// Forward steps one month later, wrapping December to January of the
// next year.
func Forward(ym YearMonth) YearMonth {
	next := YearMonth{Year: ym.Year, Month: ym.Month + 1}
	if next.Month == 13 {
		next.Month = 1
		next.Year = ym.Year + 1
	}
	return next
}

// SelectMonth replaces the month with the parsed dropdown value. The value
// is not range checked.
func SelectMonth(ym YearMonth, rawMonth string) (YearMonth, error) {
	month, err := parseSelection(rawMonth)
	if err != nil {
		return ym, fmt.Errorf("month: %w", err)
	}
	return YearMonth{Year: ym.Year, Month: month}, nil
}

// SelectYear replaces the year with the parsed dropdown value
func SelectYear(rawYear string, ym YearMonth) (YearMonth, error) {
	year, err := parseSelection(rawYear)
	if err != nil {
		return ym, fmt.Errorf("year: %w", err)
	}
	return YearMonth{Year: year, Month: ym.Month}, nil
}

func parseSelection(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, raw)
	}
	return v, nil
}
