package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/calendar"
)

// SelectedMsg carries the raw value chosen in a Select
type SelectedMsg struct {
	ID    string
	Value string
}

// Select is a dropdown over a list of options. The selected value is held
// as the raw option string; parsing is left to the receiver.
type Select struct {
	id       string
	options  []calendar.Option
	value    string
	cursor   int
	open     bool
	focused  bool
	maxShown int
}

func NewSelect(id string, options []calendar.Option, value string) Select {
	s := Select{id: id, maxShown: 7}
	s.SetOptions(options)
	s.SetValue(value)
	return s
}

func (s *Select) SetOptions(options []calendar.Option) {
	s.options = options
	if s.cursor >= len(options) {
		s.cursor = 0
	}
}

func (s *Select) SetValue(value string) {
	s.value = value
	for i, o := range s.options {
		if o.Value == value {
			s.cursor = i
			return
		}
	}
}

func (s Select) Value() string { return s.value }
func (s Select) IsOpen() bool  { return s.open }

func (s *Select) Focus() { s.focused = true }

func (s *Select) Blur() {
	s.focused = false
	s.open = false
}

// Open expands the option list with the cursor on the current value
func (s *Select) Open() {
	s.open = true
	s.SetValue(s.value)
}

func (s *Select) Close() { s.open = false }

func (s Select) label() string {
	for _, o := range s.options {
		if o.Value == s.value {
			return o.Label
		}
	}
	// out-of-range values have no option; show them raw
	return s.value
}

// Update handles keys while the list is open. Enter emits SelectedMsg.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.open {
		return s, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = len(s.options) - 1
	case "enter", " ":
		if len(s.options) == 0 {
			s.open = false
			return s, nil
		}
		s.open = false
		s.value = s.options[s.cursor].Value
		id, value := s.id, s.value
		return s, func() tea.Msg {
			return SelectedMsg{ID: id, Value: value}
		}
	case "esc":
		s.open = false
	}
	return s, nil
}

func (s Select) View() string {
	closedStyle := lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
	if s.focused {
		closedStyle = closedStyle.BorderForeground(Primary).Bold(true)
	}

	if !s.open {
		return closedStyle.Render(s.label() + " ▾")
	}

	itemStyle := lipgloss.NewStyle().Foreground(Text).PaddingLeft(1).PaddingRight(1)
	cursorStyle := itemStyle.Bold(true).Background(Primary)

	start := s.cursor - s.maxShown/2
	if start > len(s.options)-s.maxShown {
		start = len(s.options) - s.maxShown
	}
	if start < 0 {
		start = 0
	}
	end := min(start+s.maxShown, len(s.options))

	var lines []string
	for i := start; i < end; i++ {
		if i == s.cursor {
			lines = append(lines, cursorStyle.Render("> "+s.options[i].Label))
		} else {
			lines = append(lines, itemStyle.Render("  "+s.options[i].Label))
		}
	}

	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
	return listStyle.Render(strings.Join(lines, "\n"))
}
