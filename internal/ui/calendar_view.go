package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"gridcal/internal/calendar"
	"gridcal/internal/i18n"
	"gridcal/internal/ui/components"
)

const (
	monthSelectID = "month"
	yearSelectID  = "year"
)

// focusArea is the control that receives enter/space
type focusArea int

const (
	focusPrev focusArea = iota
	focusNext
	focusMonth
	focusYear
	focusGrid
	focusCount
)

// CalendarView renders a month grid with navigation controls and an
// add-event modal. The displayed month is owned by the caller: the view
// reports every requested change through OnYearAndMonthChange and only
// shows a new month after SetYearAndMonth.
type CalendarView struct {
	// Style wraps the whole rendered view
	Style                lipgloss.Style
	YearAndMonth         calendar.YearMonth
	OnYearAndMonthChange func(calendar.YearMonth) tea.Msg
	// RenderDay renders a cell's content; DefaultRenderDay when nil
	RenderDay func(calendar.DayCell) string

	builder    calendar.Builder
	clock      calendar.Clock
	events     *calendar.Store
	yearRadius int

	focus       focusArea
	cursorDate  string
	monthSelect components.Select
	yearSelect  components.Select
	modal       components.Modal
	form        eventForm

	status string
	err    error
	width  int
	height int
}

// ViewOptions configure a CalendarView
type ViewOptions struct {
	FirstWeekday time.Weekday
	YearRadius   int
	Clock        calendar.Clock
	Events       *calendar.Store
}

// NewCalendarView creates a view for ym. onChange is required.
func NewCalendarView(ym calendar.YearMonth, onChange func(calendar.YearMonth) tea.Msg, opts ViewOptions) CalendarView {
	clock := opts.Clock
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	events := opts.Events
	if events == nil {
		events = calendar.NewStore(clock)
	}
	radius := opts.YearRadius
	if radius <= 0 {
		radius = calendar.DefaultYearRadius
	}

	v := CalendarView{
		Style:                lipgloss.NewStyle().Padding(1, 2),
		OnYearAndMonthChange: onChange,
		builder:              calendar.Builder{FirstWeekday: opts.FirstWeekday, Clock: clock},
		clock:                clock,
		events:               events,
		yearRadius:           radius,
		focus:                focusGrid,
		monthSelect:          components.NewSelect(monthSelectID, calendar.MonthOptions(), ""),
		yearSelect:           components.NewSelect(yearSelectID, nil, ""),
		form:                 newEventForm(clock),
	}

	today := clock.Now().Format(calendar.DateLayout)
	if calendar.YearMonthOf(clock.Now()) == ym {
		v.cursorDate = today
	} else {
		v.cursorDate = ym.First().Format(calendar.DateLayout)
	}
	v.SetYearAndMonth(ym)
	v.applyFocus()
	return v
}

// SetYearAndMonth displays ym, keeping the cursor on the same day of month
// where possible
func (v *CalendarView) SetYearAndMonth(ym calendar.YearMonth) {
	v.YearAndMonth = ym
	v.monthSelect.SetValue(strconv.Itoa(ym.Month))
	v.yearSelect.SetOptions(calendar.YearOptions(ym.Year, v.yearRadius))
	v.yearSelect.SetValue(strconv.Itoa(ym.Year))

	first := ym.First()
	cur := v.cursorTime()
	if cur.Year() == first.Year() && cur.Month() == first.Month() {
		return
	}
	day := min(cur.Day(), calendar.DaysInMonth(ym.Year, ym.Month))
	if day < 1 {
		day = 1
	}
	v.cursorDate = first.AddDate(0, 0, day-1).Format(calendar.DateLayout)
}

// SetSize records the terminal size for modal placement
func (v *CalendarView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// IsModalShowing reports whether the add-event modal is open
func (v CalendarView) IsModalShowing() bool {
	return v.modal.IsShowing()
}

// IsCapturingInput reports whether keys like q are consumed by a control
func (v CalendarView) IsCapturingInput() bool {
	return v.modal.IsShowing() || v.monthSelect.IsOpen() || v.yearSelect.IsOpen()
}

// CursorDate returns the date under the grid cursor
func (v CalendarView) CursorDate() string {
	return v.cursorDate
}

func (v CalendarView) Grid() calendar.Grid {
	return v.builder.Build(v.YearAndMonth)
}

func (v CalendarView) cursorTime() time.Time {
	t, err := calendar.ParseDate(v.cursorDate)
	if err != nil {
		return v.YearAndMonth.First()
	}
	return t
}

// changeTo reports next to the owner
func (v *CalendarView) changeTo(next calendar.YearMonth) tea.Cmd {
	if v.OnYearAndMonthChange == nil {
		log.Warn("calendar view has no OnYearAndMonthChange callback")
		return nil
	}
	onChange := v.OnYearAndMonthChange
	return func() tea.Msg {
		return onChange(next)
	}
}

func (v *CalendarView) back() tea.Cmd {
	return v.changeTo(calendar.Back(v.YearAndMonth))
}

func (v *CalendarView) forward() tea.Cmd {
	return v.changeTo(calendar.Forward(v.YearAndMonth))
}

func (v *CalendarView) applyFocus() {
	v.monthSelect.Blur()
	v.yearSelect.Blur()
	switch v.focus {
	case focusMonth:
		v.monthSelect.Focus()
	case focusYear:
		v.yearSelect.Focus()
	}
}

func (v *CalendarView) setFocus(f focusArea) {
	v.focus = (f + focusCount) % focusCount
	v.applyFocus()
}

// moveCursor shifts the cursor by days, leaving the grid through the
// previous or next month when needed
func (v *CalendarView) moveCursor(days int) tea.Cmd {
	target := v.cursorTime().AddDate(0, 0, days)
	v.cursorDate = target.Format(calendar.DateLayout)

	if v.Grid().Index(v.cursorDate) >= 0 {
		return nil
	}
	if days < 0 {
		return v.back()
	}
	return v.forward()
}

// activateCell toggles the add-event modal for the cell under the cursor
func (v *CalendarView) activateCell() tea.Cmd {
	v.modal.Toggle()
	if !v.modal.IsShowing() {
		return nil
	}
	v.form.reset(v.cursorTime())
	return v.form.focusField(formFieldTitle)
}

// Update is the view's Bubble Tea update
func (v CalendarView) Update(msg tea.Msg) (CalendarView, tea.Cmd) {
	cmd := v.update(msg)
	return v, cmd
}

func (v *CalendarView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return nil

	case components.SelectedMsg:
		return v.handleSelected(msg)

	case components.DateChangedMsg:
		log.WithField("date", v.form.date.ValueString()).Debug("date picker changed")
		return nil

	case eventAddedMsg:
		v.status = i18n.T("calendar.event_added", map[string]any{
			"Title": msg.event.Title,
			"Date":  msg.event.DateString(),
		})
		v.err = nil
		return nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.modal.IsShowing() {
		return v.form.update(msg)
	}
	return nil
}

func (v *CalendarView) handleSelected(msg components.SelectedMsg) tea.Cmd {
	var (
		next calendar.YearMonth
		err  error
	)
	switch msg.ID {
	case monthSelectID:
		next, err = calendar.SelectMonth(v.YearAndMonth, msg.Value)
	case yearSelectID:
		next, err = calendar.SelectYear(msg.Value, v.YearAndMonth)
	default:
		return nil
	}
	if err != nil {
		v.err = err
		log.WithError(err).Warn("ignoring dropdown selection")
		return nil
	}
	v.err = nil
	return v.changeTo(next)
}

func (v *CalendarView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.modal.IsShowing() {
		return v.handleModalKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case v.monthSelect.IsOpen():
		v.monthSelect, cmd = v.monthSelect.Update(msg)
		return cmd
	case v.yearSelect.IsOpen():
		v.yearSelect, cmd = v.yearSelect.Update(msg)
		return cmd
	}

	v.status = ""

	switch {
	case key.Matches(msg, keys.NextFocus):
		v.setFocus(v.focus + 1)
	case key.Matches(msg, keys.PrevFocus):
		v.setFocus(v.focus - 1)

	case key.Matches(msg, keys.PrevMonth):
		return v.moveCursorByMonth(false)
	case key.Matches(msg, keys.NextMonth):
		return v.moveCursorByMonth(true)

	case key.Matches(msg, keys.SelectMonth):
		v.setFocus(focusMonth)
		v.monthSelect.Open()
	case key.Matches(msg, keys.SelectYear):
		v.setFocus(focusYear)
		v.yearSelect.Open()

	case key.Matches(msg, keys.Today):
		now := v.clock.Now()
		v.cursorDate = now.Format(calendar.DateLayout)
		v.setFocus(focusGrid)
		if ym := calendar.YearMonthOf(now); ym != v.YearAndMonth {
			return v.changeTo(ym)
		}

	case key.Matches(msg, keys.Activate):
		return v.activate()

	case v.focus == focusGrid && key.Matches(msg, keys.Left):
		return v.moveCursor(-1)
	case v.focus == focusGrid && key.Matches(msg, keys.Right):
		return v.moveCursor(1)
	case v.focus == focusGrid && key.Matches(msg, keys.Up):
		return v.moveCursor(-7)
	case v.focus == focusGrid && key.Matches(msg, keys.Down):
		return v.moveCursor(7)
	}
	return nil
}

// moveCursorByMonth steps the month and keeps the cursor's day of month
func (v *CalendarView) moveCursorByMonth(forward bool) tea.Cmd {
	cur := v.cursorTime()
	next := calendar.Back(v.YearAndMonth)
	if forward {
		next = calendar.Forward(v.YearAndMonth)
	}
	day := min(cur.Day(), calendar.DaysInMonth(next.Year, next.Month))
	v.cursorDate = next.First().AddDate(0, 0, day-1).Format(calendar.DateLayout)
	return v.changeTo(next)
}

func (v *CalendarView) activate() tea.Cmd {
	switch v.focus {
	case focusPrev:
		return v.back()
	case focusNext:
		return v.forward()
	case focusMonth:
		v.monthSelect.Open()
	case focusYear:
		v.yearSelect.Open()
	case focusGrid:
		return v.activateCell()
	}
	return nil
}

func (v *CalendarView) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Close):
		v.modal.Toggle()
		return nil
	case key.Matches(msg, keys.Save):
		return v.submit()
	case msg.String() == "enter" && v.form.focus == formFieldSubmit:
		return v.submit()
	}
	return v.form.handleKey(msg)
}

// submit adds the form's event and closes the modal
func (v *CalendarView) submit() tea.Cmd {
	date, _ := v.form.date.Value()
	event, err := v.events.Add(v.form.title.Value(), date)
	if err != nil {
		v.form.err = err
		return nil
	}

	log.WithFields(log.Fields{
		"id":   event.ID,
		"date": event.DateString(),
	}).Info("event added")

	v.modal.Hide()
	v.cursorDate = event.DateString()
	if ym := calendar.YearMonthOf(event.Date); ym != v.YearAndMonth {
		return tea.Batch(v.changeTo(ym), added(event))
	}
	return added(event)
}

type eventAddedMsg struct {
	event calendar.Event
}

func added(e calendar.Event) tea.Cmd {
	return func() tea.Msg {
		return eventAddedMsg{event: e}
	}
}

// DefaultRenderDay renders the day number with a marker on today
func DefaultRenderDay(cell calendar.DayCell) string {
	if cell.IsToday {
		return fmt.Sprintf("%2d*", cell.DayOfMonth)
	}
	return fmt.Sprintf("%2d ", cell.DayOfMonth)
}
