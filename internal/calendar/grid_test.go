package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2022, 1, 31},
		{2022, 4, 30},
		{2022, 9, 30},
		{2022, 12, 31},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestCurrentMonthDays(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			days := CurrentMonthDays(year, month)
			require.Len(t, days, DaysInMonth(year, month), "%d-%02d", year, month)
			for i, d := range days {
				assert.Equal(t, i+1, d.DayOfMonth)
				assert.True(t, d.IsCurrentMonth)
				assert.Equal(t, fmt.Sprintf("%04d-%02d-%02d", year, month, i+1), d.DateString)
			}
		}
	}
}

func assertGridInvariants(t *testing.T, b Builder, ym YearMonth) {
	t.Helper()
	grid := b.Build(ym)
	name := fmt.Sprintf("%s first=%s", ym, b.FirstWeekday)

	require.NotEmpty(t, grid.Cells, name)
	assert.Zero(t, len(grid.Cells)%7, name)
	assert.Len(t, grid.Weeks(), len(grid.Cells)/7, name)

	seen := make(map[string]bool, len(grid.Cells))
	for _, c := range grid.Cells {
		assert.False(t, seen[c.DateString], "%s: duplicate %s", name, c.DateString)
		seen[c.DateString] = true
	}

	assert.Equal(t, b.FirstWeekday, grid.Cells[0].Date().Weekday(), name)
	assert.Equal(t, (b.FirstWeekday+6)%7, grid.Cells[len(grid.Cells)-1].Date().Weekday(), name)

	// consecutive days without gaps
	for i := 1; i < len(grid.Cells); i++ {
		next := grid.Cells[i-1].Date().AddDate(0, 0, 1)
		assert.True(t, next.Equal(grid.Cells[i].Date()), "%s: gap at %d", name, i)
	}

	var inMonth int
	start := -1
	for i, c := range grid.Cells {
		if c.IsCurrentMonth {
			if start < 0 {
				start = i
			}
			inMonth++
			assert.Equal(t, i-start+1, c.DayOfMonth, name)
		}
	}
	assert.Equal(t, DaysInMonth(ym.Year, ym.Month), inMonth, name)
	assert.Less(t, start, 7, name)
}

func TestGridInvariants(t *testing.T) {
	for _, first := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
		b := Builder{FirstWeekday: first}
		for year := 1999; year <= 2030; year++ {
			for month := 1; month <= 12; month++ {
				assertGridInvariants(t, b, YearMonth{Year: year, Month: month})
			}
		}
	}
}

func TestGridInvariantsBeyondFourDigitYears(t *testing.T) {
	months := []YearMonth{
		{Year: 9999, Month: 12},
		Forward(YearMonth{Year: 9999, Month: 12}),
		{Year: 10000, Month: 3},
		{Year: 123456, Month: 2},
		{Year: 0, Month: 2},
		Back(YearMonth{Year: 0, Month: 1}),
		{Year: -1, Month: 3},
		{Year: -400, Month: 2},
	}
	for _, first := range []time.Weekday{time.Sunday, time.Monday} {
		for _, ym := range months {
			assertGridInvariants(t, Builder{FirstWeekday: first}, ym)
		}
	}

	grid := BuildGrid(YearMonth{Year: 10000, Month: 1})
	assert.Equal(t, 6, grid.Index("10000-01-01"))
	assert.Equal(t, "9999-12-26", grid.Cells[0].DateString)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2022-03-15", want: time.Date(2022, 3, 15, 0, 0, 0, 0, time.Local)},
		{in: "0000-02-29", want: time.Date(0, 2, 29, 0, 0, 0, 0, time.Local)},
		{in: "10000-01-01", want: time.Date(10000, 1, 1, 0, 0, 0, 0, time.Local)},
		{in: "-0001-03-01", want: time.Date(-1, 3, 1, 0, 0, 0, 0, time.Local)},
		{in: "2022-02-30", wantErr: true},
		{in: "2022-3-15", wantErr: true},
		{in: "+2022-03-15", wantErr: true},
		{in: "2022-03", wantErr: true},
		{in: "", wantErr: true},
		{in: "abcd-ef-gh", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseDate(test.in)
		if test.wantErr {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.True(t, test.want.Equal(got), "%s: got %v", test.in, got)
	}
}

func TestBuildGridMarch2022(t *testing.T) {
	grid := BuildGrid(YearMonth{Year: 2022, Month: 3})

	require.Len(t, grid.Cells, 35)
	assert.Equal(t, "2022-02-27", grid.Cells[0].DateString)
	assert.False(t, grid.Cells[0].IsCurrentMonth)
	assert.Equal(t, "2022-02-28", grid.Cells[1].DateString)
	assert.Equal(t, "2022-03-01", grid.Cells[2].DateString)
	assert.True(t, grid.Cells[2].IsCurrentMonth)
	assert.Equal(t, "2022-04-02", grid.Cells[34].DateString)
	assert.False(t, grid.Cells[34].IsCurrentMonth)
	assert.Len(t, grid.Weeks(), 5)
}

func TestBuildGridYearWrap(t *testing.T) {
	tests := []struct {
		name      string
		ym        YearMonth
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{"january pads from previous december", YearMonth{2022, 1}, 42, "2021-12-26", "2022-02-05"},
		{"december pads into next january", YearMonth{2021, 12}, 35, "2021-11-28", "2022-01-01"},
		{"february without padding", YearMonth{2015, 2}, 28, "2015-02-01", "2015-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(tt.ym)
			require.Len(t, grid.Cells, tt.wantLen)
			assert.Equal(t, tt.wantFirst, grid.Cells[0].DateString)
			assert.Equal(t, tt.wantLast, grid.Cells[len(grid.Cells)-1].DateString)
		})
	}
}

func TestBuilderMondayFirst(t *testing.T) {
	b := Builder{FirstWeekday: time.Monday}
	grid := b.Build(YearMonth{Year: 2022, Month: 3})

	require.Len(t, grid.Cells, 35)
	assert.Equal(t, "2022-02-28", grid.Cells[0].DateString)
	assert.Equal(t, "2022-04-03", grid.Cells[34].DateString)
	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}, b.Weekdays())
}

func TestPaddingWithoutCurrentDays(t *testing.T) {
	assert.Empty(t, PreviousMonthDays(2022, 3, nil))
	assert.Empty(t, NextMonthDays(2022, 3, nil))
}

func TestIsWeekendDay(t *testing.T) {
	assert.True(t, IsWeekendDay("2024-01-06"))
	assert.True(t, IsWeekendDay("2024-01-07"))
	assert.False(t, IsWeekendDay("2024-01-08"))
	assert.False(t, IsWeekendDay("not-a-date"))
}

func TestTodayMarker(t *testing.T) {
	clock := &FixedClock{FixedNow: time.Date(2022, 3, 15, 10, 30, 0, 0, time.Local)}

	day, ok := IsToday(clock, "2022-03-15")
	assert.True(t, ok)
	assert.Equal(t, 15, day)

	_, ok = IsToday(clock, "2022-03-16")
	assert.False(t, ok)
	assert.Equal(t, 15, Today(clock))

	grid := Builder{Clock: clock}.Build(YearMonth{Year: 2022, Month: 3})
	var today []string
	for _, c := range grid.Cells {
		if c.IsToday {
			today = append(today, c.DateString)
		}
	}
	assert.Equal(t, []string{"2022-03-15"}, today)

	clock.SetNow(time.Date(2022, 5, 1, 0, 0, 0, 0, time.Local))
	grid = Builder{Clock: clock}.Build(YearMonth{Year: 2022, Month: 3})
	for _, c := range grid.Cells {
		assert.False(t, c.IsToday, c.DateString)
	}
}

func TestTodayUsesLocalDate(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("UTC+10", 10*60*60)
	t.Cleanup(func() { time.Local = prev })

	// 20:00 UTC on the 15th is already the 16th locally
	clock := &FixedClock{FixedNow: time.Date(2022, 3, 15, 20, 0, 0, 0, time.UTC)}

	day, ok := IsToday(clock, "2022-03-16")
	assert.True(t, ok)
	assert.Equal(t, 16, day)
	assert.Equal(t, 16, Today(clock))

	_, ok = IsToday(clock, "2022-03-15")
	assert.False(t, ok)

	grid := Builder{Clock: clock}.Build(YearMonth{Year: 2022, Month: 3})
	i := grid.Index("2022-03-16")
	require.GreaterOrEqual(t, i, 0)
	assert.True(t, grid.Cells[i].IsToday)
	assert.False(t, grid.Cells[i-1].IsToday)
}

func TestOutOfRangeMonthDoesNotPanic(t *testing.T) {
	for _, month := range []int{0, 13, -5} {
		grid := BuildGrid(YearMonth{Year: 2022, Month: month})
		assert.Zero(t, len(grid.Cells)%7)
		assert.NotEmpty(t, grid.Cells)
	}
}

func TestGridIndex(t *testing.T) {
	grid := BuildGrid(YearMonth{Year: 2022, Month: 3})
	assert.Equal(t, 2, grid.Index("2022-03-01"))
	assert.Equal(t, -1, grid.Index("2022-05-01"))
}
