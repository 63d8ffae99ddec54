package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/ui/components"
)

const cellWidth = 7

var (
	headerCellStyle    lipgloss.Style
	weekendHeaderStyle lipgloss.Style
	dayCellStyle       lipgloss.Style
	otherMonthStyle    lipgloss.Style
	eventMarkStyle     lipgloss.Style
	titleStyle         lipgloss.Style
	errorStyle         lipgloss.Style
	statusStyle        lipgloss.Style
	helpStyle          lipgloss.Style
	helpKeyStyle       lipgloss.Style
)

func init() {
	buildStyles()
}

// SetTheme switches the palette by name and rebuilds the styles from it
func SetTheme(name string) error {
	if err := components.ApplyTheme(name); err != nil {
		return err
	}
	buildStyles()
	return nil
}

func buildStyles() {
	headerCellStyle = lipgloss.NewStyle().
		Foreground(components.Muted).
		Width(cellWidth).
		Align(lipgloss.Center)
	weekendHeaderStyle = headerCellStyle.Foreground(components.Weekend)

	dayCellStyle = lipgloss.NewStyle().
		Foreground(components.Text).
		Width(cellWidth).
		Align(lipgloss.Center)
	otherMonthStyle = dayCellStyle.Foreground(components.Muted)

	eventMarkStyle = lipgloss.NewStyle().Foreground(components.Warning)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(components.Primary).
		Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(components.Danger)
	statusStyle = lipgloss.NewStyle().Foreground(components.Success)

	helpStyle = lipgloss.NewStyle().Foreground(components.Muted)
	helpKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(components.Secondary)
}

// cellStyle folds the cell flags into a style; later flags win
func cellStyle(isCurrentMonth, isWeekend, isToday, isCursor bool) lipgloss.Style {
	style := dayCellStyle
	if isWeekend {
		style = style.Foreground(components.Weekend)
	}
	if !isCurrentMonth {
		style = otherMonthStyle
	}
	if isToday && isCurrentMonth {
		style = style.Bold(true).Background(components.Today).Foreground(components.Text)
	}
	if isCursor {
		style = style.Bold(true).Background(components.Accent).Foreground(components.OnAccent)
	}
	return style
}

// Key bindings
var keys = struct {
	Quit        key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	SelectMonth key.Binding
	SelectYear  key.Binding
	Today       key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Activate    key.Binding
	Close       key.Binding
	Save        key.Binding
}{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Left:        key.NewBinding(key.WithKeys("left", "h")),
	Right:       key.NewBinding(key.WithKeys("right", "l")),
	Up:          key.NewBinding(key.WithKeys("up", "k")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	PrevMonth:   key.NewBinding(key.WithKeys("[", "H", "pgup")),
	NextMonth:   key.NewBinding(key.WithKeys("]", "L", "pgdown")),
	SelectMonth: key.NewBinding(key.WithKeys("m")),
	SelectYear:  key.NewBinding(key.WithKeys("y")),
	Today:       key.NewBinding(key.WithKeys("t")),
	NextFocus:   key.NewBinding(key.WithKeys("tab")),
	PrevFocus:   key.NewBinding(key.WithKeys("shift+tab")),
	Activate:    key.NewBinding(key.WithKeys("enter", " ")),
	Close:       key.NewBinding(key.WithKeys("esc")),
	Save:        key.NewBinding(key.WithKeys("ctrl+s")),
}
