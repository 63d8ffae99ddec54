package calendar

import (
	"strconv"
	"time"
)

// DefaultYearRadius is how many years either side of the current year the
// year dropdown offers
const DefaultYearRadius = 10

// Option is a dropdown entry
type Option struct {
	Label string
	Value string
}

// MonthOptions returns the twelve months with 1-based values
func MonthOptions() []Option {
	opts := make([]Option, 12)
	for i := range opts {
		opts[i] = Option{
			Label: time.Month(i + 1).String(),
			Value: strconv.Itoa(i + 1),
		}
	}
	return opts
}

// YearOptions returns year-radius..year+radius in ascending order
func YearOptions(year, radius int) []Option {
	if radius < 0 {
		radius = 0
	}
	opts := make([]Option, 0, 2*radius+1)
	for y := year - radius; y <= year+radius; y++ {
		s := strconv.Itoa(y)
		opts = append(opts, Option{Label: s, Value: s})
	}
	return opts
}
