package calendar

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle = errors.New("event title is required")
	ErrNoDate     = errors.New("event date is required")
)

// Event is an entry added through the add-event form. Events live only for
// the lifetime of the process.
type Event struct {
	ID        string
	Title     string
	Date      time.Time
	CreatedAt time.Time
}

// DateString returns the event date in DateLayout
func (e Event) DateString() string {
	return e.Date.Format(DateLayout)
}

// Store holds the session's events in memory
type Store struct {
	mu     sync.RWMutex
	clock  Clock
	events []Event
}

func NewStore(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{clock: clock}
}

// Add validates and stores a new event, returning it with its ID set
func (s *Store) Add(title string, date time.Time) (Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Event{}, ErrEmptyTitle
	}
	if date.IsZero() {
		return Event{}, ErrNoDate
	}

	e := Event{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local),
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return e, nil
}

// ForDate returns events on dateString in insertion order
func (s *Store) ForDate(dateString string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Event
	for _, e := range s.events {
		if e.DateString() == dateString {
			result = append(result, e)
		}
	}
	return result
}

func (s *Store) HasEvents(dateString string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.DateString() == dateString {
			return true
		}
	}
	return false
}

// All returns every event sorted by date, then creation time
func (s *Store) All() []Event {
	s.mu.RLock()
	result := make([]Event, len(s.events))
	copy(result, s.events)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
