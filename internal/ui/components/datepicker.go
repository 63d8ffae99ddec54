package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/calendar"
)

// DatePickerField represents which field is currently focused
type DatePickerField int

const (
	FieldYear DatePickerField = iota
	FieldMonth
	FieldDay
)

// DateChangedMsg is emitted whenever the picker's selection changes.
// Set is false after the picker was cleared.
type DateChangedMsg struct {
	Date time.Time
	Set  bool
}

// DatePicker is a clearable year/month/day picker
type DatePicker struct {
	clock       calendar.Clock
	year        int
	month       int // 1-12
	day         int
	set         bool
	focused     bool
	focusField  DatePickerField
	Placeholder string
}

// NewDatePicker creates a picker holding the clock's current date
func NewDatePicker(clock calendar.Clock) DatePicker {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	d := DatePicker{
		clock:      clock,
		focusField: FieldDay,
	}
	d.SetDate(clock.Now())
	return d
}

func (d *DatePicker) Focus() {
	d.focused = true
}

func (d *DatePicker) Blur() {
	d.focused = false
}

func (d DatePicker) Focused() bool {
	return d.focused
}

func (d *DatePicker) SetDate(t time.Time) {
	d.year = t.Year()
	d.month = int(t.Month())
	d.day = t.Day()
	d.set = true
}

// Clear empties the selection; the next increment or decrement starts
// from today again.
func (d *DatePicker) Clear() {
	d.set = false
}

// Value returns the selected date at local midnight and whether a date is
// selected at all
func (d DatePicker) Value() (time.Time, bool) {
	if !d.set {
		return time.Time{}, false
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.Local), true
}

// ValueString returns the date in YYYY-MM-DD format, or "" when cleared
func (d DatePicker) ValueString() string {
	if !d.set {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d *DatePicker) clampDay() {
	maxDay := calendar.DaysInMonth(d.year, d.month)
	if d.day > maxDay {
		d.day = maxDay
	}
	if d.day < 1 {
		d.day = 1
	}
}

func (d DatePicker) changed() tea.Cmd {
	date, ok := d.Value()
	return func() tea.Msg {
		return DateChangedMsg{Date: date, Set: ok}
	}
}

// Update handles keys while focused
func (d DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	if !d.focused {
		return d, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "up", "k", "+":
		d.step(1)
		return d, d.changed()
	case "down", "j", "-":
		d.step(-1)
		return d, d.changed()
	case "left", "h":
		d.focusField = (d.focusField + 2) % 3
	case "right", "l":
		d.focusField = (d.focusField + 1) % 3
	case "x", "backspace", "delete":
		if d.set {
			d.Clear()
			return d, d.changed()
		}
	}
	return d, nil
}

func (d *DatePicker) step(delta int) {
	if !d.set {
		d.SetDate(d.clock.Now())
		return
	}

	switch d.focusField {
	case FieldYear:
		d.year += delta
	case FieldMonth:
		ym := calendar.YearMonth{Year: d.year, Month: d.month}
		if delta > 0 {
			ym = calendar.Forward(ym)
		} else {
			ym = calendar.Back(ym)
		}
		d.year, d.month = ym.Year, ym.Month
	case FieldDay:
		d.day += delta
		n := calendar.DaysInMonth(d.year, d.month)
		if d.day > n {
			d.day = 1
		} else if d.day < 1 {
			d.day = n
		}
	}
	d.clampDay()
}

func (d DatePicker) View() string {
	normalStyle := lipgloss.NewStyle().Foreground(Text)
	focusedStyle := lipgloss.NewStyle().Foreground(Text).Background(Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(Muted)

	if !d.set {
		return dimStyle.Italic(true).Render(d.Placeholder)
	}

	parts := map[DatePickerField]string{
		FieldMonth: time.Month(d.month).String()[:3],
		FieldDay:   fmt.Sprintf("%2d", d.day),
		FieldYear:  fmt.Sprintf("%d", d.year),
	}
	render := func(f DatePickerField) string {
		switch {
		case !d.focused:
			return dimStyle.Render(parts[f])
		case d.focusField == f:
			return focusedStyle.Render(parts[f])
		default:
			return normalStyle.Render(parts[f])
		}
	}

	// "Mar 15, 2022"
	return render(FieldMonth) + " " + render(FieldDay) + normalStyle.Render(", ") + render(FieldYear)
}
