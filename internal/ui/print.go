package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/calendar"
)

// RenderMonth renders a static grid for non-interactive output. Plain mode
// marks today with * and shows padding days in brackets, e.g. "[27]".
func RenderMonth(b calendar.Builder, ym calendar.YearMonth, styled bool) string {
	grid := b.Build(ym)
	var out strings.Builder

	title := ym.Label()
	if styled {
		out.WriteString(titleStyle.Render(title))
	} else {
		out.WriteString(centerText(title, cellWidth*7))
	}
	out.WriteString("\n")

	for _, wd := range b.Weekdays() {
		name := wd.String()[:3]
		switch {
		case !styled:
			out.WriteString(centerText(name, cellWidth))
		case wd == 0 || wd == 6:
			out.WriteString(weekendHeaderStyle.Render(name))
		default:
			out.WriteString(headerCellStyle.Render(name))
		}
	}
	out.WriteString("\n")

	for _, week := range grid.Weeks() {
		for _, cell := range week {
			if styled {
				style := cellStyle(cell.IsCurrentMonth, cell.IsWeekend, cell.IsToday, false)
				out.WriteString(style.Render(DefaultRenderDay(cell)))
				continue
			}
			out.WriteString(centerText(plainDay(cell), cellWidth))
		}
		out.WriteString("\n")
	}
	return out.String()
}

func plainDay(cell calendar.DayCell) string {
	switch {
	case !cell.IsCurrentMonth:
		return fmt.Sprintf("[%d]", cell.DayOfMonth)
	case cell.IsToday:
		return fmt.Sprintf("%d*", cell.DayOfMonth)
	default:
		return fmt.Sprintf("%d", cell.DayOfMonth)
	}
}

func centerText(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
