package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal is an open/closed flag with a bordered dialog renderer
type Modal struct {
	isShowing bool
}

func (m Modal) IsShowing() bool {
	return m.isShowing
}

func (m *Modal) Toggle() {
	m.isShowing = !m.isShowing
}

// Hide closes the modal if it is open
func (m *Modal) Hide() {
	m.isShowing = false
}

// View draws the dialog. It returns "" while the modal is hidden.
func (m Modal) View(title, body string, width int) string {
	if !m.isShowing {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)
	closeHint := lipgloss.NewStyle().
		Foreground(Muted).
		Render("esc ✕")

	header := titleStyle.Render(title)
	if width > 0 {
		gap := width - lipgloss.Width(header) - lipgloss.Width(closeHint)
		if gap > 0 {
			header += strings.Repeat(" ", gap)
		}
	} else {
		header += "  "
	}
	header += closeHint

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
	if width > 0 {
		box = box.Width(width + 4)
	}

	return box.Render(header + "\n\n" + body)
}
