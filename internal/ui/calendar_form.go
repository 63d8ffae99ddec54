package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gridcal/internal/calendar"
	"gridcal/internal/i18n"
	"gridcal/internal/ui/components"
)

type formField int

const (
	formFieldTitle formField = iota
	formFieldDate
	formFieldSubmit
	formFieldCount
)

const formWidth = 44

// eventForm is the body of the add-event modal
type eventForm struct {
	title textinput.Model
	date  components.DatePicker
	focus formField
	err   error
}

func newEventForm(clock calendar.Clock) eventForm {
	title := textinput.New()
	title.CharLimit = 80
	title.Width = formWidth - 12

	date := components.NewDatePicker(clock)

	return eventForm{
		title: title,
		date:  date,
	}
}

// reset empties the title and points the date picker at date
func (f *eventForm) reset(date time.Time) {
	f.title.SetValue("")
	f.title.Placeholder = i18n.T("form.title_placeholder")
	f.date.Placeholder = i18n.T("form.date_cleared")
	f.date.SetDate(date)
	f.err = nil
}

func (f *eventForm) focusField(field formField) tea.Cmd {
	f.focus = (field + formFieldCount) % formFieldCount
	f.title.Blur()
	f.date.Blur()

	switch f.focus {
	case formFieldTitle:
		return f.title.Focus()
	case formFieldDate:
		f.date.Focus()
	}
	return nil
}

func (f *eventForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextFocus):
		return f.focusField(f.focus + 1)
	case key.Matches(msg, keys.PrevFocus):
		return f.focusField(f.focus - 1)
	}

	var cmd tea.Cmd
	switch f.focus {
	case formFieldTitle:
		if msg.String() == "enter" {
			return f.focusField(formFieldDate)
		}
		f.title, cmd = f.title.Update(msg)
	case formFieldDate:
		if msg.String() == "enter" {
			return f.focusField(formFieldSubmit)
		}
		f.date, cmd = f.date.Update(msg)
	}
	return cmd
}

// update forwards non-key messages such as cursor blinks
func (f *eventForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	return cmd
}

func (f eventForm) view() string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Width(10).Foreground(components.Muted)
	focusedLabelStyle := labelStyle.Foreground(components.Primary).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(components.Muted)

	label := func(field formField, text string) string {
		if f.focus == field {
			return focusedLabelStyle.Render(text)
		}
		return labelStyle.Render(text)
	}

	b.WriteString(label(formFieldTitle, i18n.T("form.title")))
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(label(formFieldDate, i18n.T("form.date")))
	b.WriteString(f.date.View())
	if f.date.Focused() {
		b.WriteString(hintStyle.Render("  ↑↓←→ • x " + i18n.T("help.clear")))
	}
	b.WriteString("\n\n")

	b.WriteString(components.Button(i18n.T("form.submit"), f.focus == formFieldSubmit))

	if f.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", i18n.T("common.error"), f.err)))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("tab %s • ctrl+s %s • esc %s",
		i18n.T("help.field"), i18n.T("form.submit"), i18n.T("help.close"))))

	return b.String()
}
