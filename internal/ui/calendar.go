package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"gridcal/internal/calendar"
)

// yearMonthChangedMsg is what the view's callback produces
type yearMonthChangedMsg struct {
	next calendar.YearMonth
}

// CalendarApp owns the displayed month and hosts a CalendarView
type CalendarApp struct {
	yearAndMonth calendar.YearMonth
	view         CalendarView
}

// NewCalendarApp creates the TUI starting at ym
func NewCalendarApp(ym calendar.YearMonth, opts ViewOptions) *CalendarApp {
	app := &CalendarApp{yearAndMonth: ym}
	app.view = NewCalendarView(ym, app.onYearAndMonthChange, opts)
	return app
}

func (m *CalendarApp) onYearAndMonthChange(next calendar.YearMonth) tea.Msg {
	return yearMonthChangedMsg{next: next}
}

// YearAndMonth returns the month currently shown
func (m *CalendarApp) YearAndMonth() calendar.YearMonth {
	return m.yearAndMonth
}

func (m *CalendarApp) Init() tea.Cmd {
	return nil
}

func (m *CalendarApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yearMonthChangedMsg:
		log.WithFields(log.Fields{
			"from": m.yearAndMonth.String(),
			"to":   msg.next.String(),
		}).Debug("month changed")
		m.yearAndMonth = msg.next
		m.view.SetYearAndMonth(m.yearAndMonth)
		return m, nil

	case tea.KeyMsg:
		if !m.view.IsCapturingInput() && key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *CalendarApp) View() string {
	return m.view.View()
}
