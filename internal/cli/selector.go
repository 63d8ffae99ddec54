package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/ui/components"
)

var (
	selectorTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(components.Primary).MarginBottom(1)
	selectorItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	selectorCursorStyle = lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(components.Text).Background(components.Primary)
	selectorHintStyle   = lipgloss.NewStyle().Foreground(components.Muted).MarginTop(1)
)

// SelectorItem is one choice offered by RunSelector
type SelectorItem struct {
	ID    string
	Label string
}

// Selector is a one-shot list picker used by the config command
type Selector struct {
	title     string
	items     []SelectorItem
	cursor    int
	selected  string
	done      bool
	cancelled bool
}

func NewSelector(title string, items []SelectorItem) Selector {
	return Selector{
		title: title,
		items: items,
	}
}

func (s Selector) Init() tea.Cmd {
	return nil
}

func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		case "home", "g":
			s.cursor = 0
		case "end", "G":
			s.cursor = len(s.items) - 1
		case "enter":
			if len(s.items) == 0 {
				s.cancelled = true
				return s, tea.Quit
			}
			s.selected = s.items[s.cursor].ID
			s.done = true
			return s, tea.Quit
		case "esc", "q", "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(selectorTitleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, item := range s.items {
		if i == s.cursor {
			b.WriteString(selectorCursorStyle.Render(fmt.Sprintf("> %s", item.Label)))
		} else {
			b.WriteString(selectorItemStyle.Render(fmt.Sprintf("  %s", item.Label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(selectorHintStyle.Render("↑/k up • ↓/j down • g/G first/last • enter select • esc cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Selected returns the chosen ID; ok is false until enter was pressed
func (s Selector) Selected() (id string, ok bool) {
	return s.selected, s.done
}

func (s Selector) Cancelled() bool {
	return s.cancelled
}

// RunSelector runs the selector TUI and returns the selected ID and label
func RunSelector(title string, items []SelectorItem) (string, string, bool) {
	selector := NewSelector(title, items)
	p := tea.NewProgram(selector)

	m, err := p.Run()
	if err != nil {
		return "", "", true
	}

	result := m.(Selector)
	id, ok := result.Selected()
	if result.Cancelled() || !ok {
		return "", "", true
	}

	for _, item := range items {
		if item.ID == id {
			return item.ID, item.Label, false
		}
	}
	return id, "", false
}
