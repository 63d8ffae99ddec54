package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/i18n"
	"gridcal/internal/ui/components"
	"gridcal/internal/ui/utils"
)

func (v CalendarView) View() string {
	if v.modal.IsShowing() {
		dialog := v.modal.View(i18n.T("modal.add_event"), v.form.view(), formWidth)
		if v.width > 0 && v.height > 0 {
			return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, dialog)
		}
		return dialog
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(v.YearAndMonth.Label()))
	b.WriteString("\n\n")
	b.WriteString(v.renderNavigation())
	b.WriteString("\n\n")
	b.WriteString(v.renderWeekdayHeader())
	b.WriteString("\n")
	b.WriteString(v.renderMonthGrid())
	b.WriteString("\n")
	b.WriteString(v.renderDayEvents())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", i18n.T("common.error"), v.err)))
		b.WriteString("\n")
	} else if v.status != "" {
		b.WriteString(statusStyle.Render(v.status))
		b.WriteString("\n")
	}

	b.WriteString(v.renderHelpBar())

	return v.Style.Render(b.String())
}

func (v CalendarView) renderNavigation() string {
	prev := navButton(i18n.T("nav.prev"), v.focus == focusPrev)
	next := navButton(i18n.T("nav.next"), v.focus == focusNext)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		prev, " ", next, "   ",
		v.monthSelect.View(), " ",
		v.yearSelect.View(),
	)
}

func navButton(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.Muted).
		Padding(0, 1)
	if focused {
		style = style.Bold(true).BorderForeground(components.Primary)
	}
	return style.Render(label)
}

func (v CalendarView) renderWeekdayHeader() string {
	var b strings.Builder
	for _, wd := range v.builder.Weekdays() {
		name := wd.String()[:3]
		if wd == 0 || wd == 6 {
			b.WriteString(weekendHeaderStyle.Render(name))
		} else {
			b.WriteString(headerCellStyle.Render(name))
		}
	}
	return b.String()
}

func (v CalendarView) renderMonthGrid() string {
	renderDay := v.RenderDay
	if renderDay == nil {
		renderDay = DefaultRenderDay
	}

	var b strings.Builder
	for _, week := range v.Grid().Weeks() {
		for _, cell := range week {
			content := renderDay(cell)
			if v.events.HasEvents(cell.DateString) {
				content += eventMarkStyle.Render("•")
			}

			isCursor := v.focus == focusGrid && cell.DateString == v.cursorDate
			style := cellStyle(cell.IsCurrentMonth, cell.IsWeekend, cell.IsToday, isCursor)
			b.WriteString(style.Render(content))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v CalendarView) renderDayEvents() string {
	var b strings.Builder

	date := v.cursorTime()
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(
		i18n.T("calendar.events_on", map[string]any{"Date": date.Format("Mon, Jan 2 2006")})))
	b.WriteString("\n")

	events := v.events.ForDate(v.cursorDate)
	if len(events) == 0 {
		b.WriteString(helpStyle.Italic(true).Render("  " + i18n.T("calendar.no_events")))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range events {
		b.WriteString("  ")
		b.WriteString(eventMarkStyle.Render("•"))
		b.WriteString(" ")
		b.WriteString(utils.Truncate(e.Title, cellWidth*7-4))
		b.WriteString("\n")
	}
	return b.String()
}

func (v CalendarView) renderHelpBar() string {
	key := func(k, label string) string {
		return fmt.Sprintf("%s %s", helpKeyStyle.Render(k), label)
	}

	if v.monthSelect.IsOpen() || v.yearSelect.IsOpen() {
		return helpStyle.Render(strings.Join([]string{
			key("↑↓", i18n.T("help.move")),
			key("enter", i18n.T("help.choose")),
			key("esc", i18n.T("help.close")),
		}, "  "))
	}

	row1 := []string{
		key("←→", i18n.T("help.day")),
		key("↑↓", i18n.T("help.week")),
		key("[ ]", i18n.T("help.month")),
		key("m", i18n.T("help.select_month")),
		key("y", i18n.T("help.select_year")),
	}
	row2 := []string{
		key("tab", i18n.T("help.focus")),
		key("t", i18n.T("help.today")),
		key("enter", i18n.T("help.add")),
		key("q", i18n.T("help.quit")),
	}
	return helpStyle.Render(strings.Join(row1, "  ")) + "\n" + helpStyle.Render(strings.Join(row2, "  "))
}
