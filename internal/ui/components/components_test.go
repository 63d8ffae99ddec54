package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gridcal/internal/calendar"
)

func fixedClock() *calendar.FixedClock {
	return &calendar.FixedClock{FixedNow: time.Date(2024, 1, 31, 12, 0, 0, 0, time.Local)}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDatePickerDefaultsToToday(t *testing.T) {
	d := NewDatePicker(fixedClock())
	assert.Equal(t, "2024-01-31", d.ValueString())

	date, ok := d.Value()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), date)
}

func TestDatePickerIgnoresKeysWhenBlurred(t *testing.T) {
	d := NewDatePicker(fixedClock())
	d, cmd := d.Update(key("up"))
	assert.Nil(t, cmd)
	assert.Equal(t, "2024-01-31", d.ValueString())
}

func TestDatePickerStepping(t *testing.T) {
	d := NewDatePicker(fixedClock())
	d.Focus()

	// day wraps within the month
	d, cmd := d.Update(key("up"))
	require.NotNil(t, cmd)
	assert.Equal(t, DateChangedMsg{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), Set: true}, cmd())

	d, _ = d.Update(key("down"))
	assert.Equal(t, "2024-01-31", d.ValueString())

	// month clamps the day: Jan 31 -> Feb 29 in a leap year
	d, _ = d.Update(key("left"))
	d, _ = d.Update(key("up"))
	assert.Equal(t, "2024-02-29", d.ValueString())

	// month wraps the year
	for i := 0; i < 2; i++ {
		d, _ = d.Update(key("down"))
	}
	assert.Equal(t, "2023-12-29", d.ValueString())

	// year: 2024-02-29 style clamp
	d.SetDate(time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local))
	d, _ = d.Update(key("left"))
	d, _ = d.Update(key("up"))
	assert.Equal(t, "2025-02-28", d.ValueString())
}

func TestDatePickerClear(t *testing.T) {
	d := NewDatePicker(fixedClock())
	d.Placeholder = "No date selected"
	d.Focus()

	d, cmd := d.Update(key("x"))
	require.NotNil(t, cmd)
	assert.Equal(t, DateChangedMsg{Set: false}, cmd())
	assert.Equal(t, "", d.ValueString())
	_, ok := d.Value()
	assert.False(t, ok)
	assert.Contains(t, d.View(), "No date selected")

	// clearing twice is a no-op
	_, cmd = d.Update(key("x"))
	assert.Nil(t, cmd)

	// stepping a cleared picker restores today
	d, _ = d.Update(key("up"))
	assert.Equal(t, "2024-01-31", d.ValueString())
}

func TestSelect(t *testing.T) {
	s := NewSelect("month", calendar.MonthOptions(), "3")
	assert.Contains(t, s.View(), "March")

	s, cmd := s.Update(key("down"))
	assert.Nil(t, cmd, "closed select ignores keys")

	s.Open()
	assert.True(t, s.IsOpen())
	s, _ = s.Update(key("down"))
	s, cmd = s.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectedMsg{ID: "month", Value: "4"}, cmd())
	assert.False(t, s.IsOpen())
	assert.Equal(t, "4", s.Value())

	s.Open()
	s, _ = s.Update(key("G"))
	s, _ = s.Update(key("esc"))
	assert.False(t, s.IsOpen())
	assert.Equal(t, "4", s.Value(), "esc keeps the old value")
}

func TestSelectShowsUnknownValueRaw(t *testing.T) {
	s := NewSelect("month", calendar.MonthOptions(), "13")
	assert.Contains(t, s.View(), "13")
}

func TestModal(t *testing.T) {
	var m Modal
	assert.False(t, m.IsShowing())
	assert.Empty(t, m.View("Add Event", "body", 30))

	m.Toggle()
	assert.True(t, m.IsShowing())
	view := m.View("Add Event", "body", 30)
	assert.Contains(t, view, "Add Event")
	assert.Contains(t, view, "body")

	m.Toggle()
	assert.False(t, m.IsShowing())

	m.Toggle()
	m.Hide()
	assert.False(t, m.IsShowing())
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(DefaultTheme) })

	require.NoError(t, ApplyTheme("Light"))
	assert.Equal(t, Themes["light"].Primary, Primary)
	assert.Equal(t, Themes["light"].Text, Text)

	err := ApplyTheme("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, Themes["light"].Primary, Primary, "unknown theme keeps the palette")

	require.NoError(t, ApplyTheme(""))
	assert.Equal(t, Themes[DefaultTheme].Primary, Primary)
}
