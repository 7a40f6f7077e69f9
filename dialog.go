package main

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// SessionKind names the free-text input a chat is expected to send next.
type SessionKind int

const (
	NoSession SessionKind = iota
	WaitingForEvent
	WaitingForEventName
	WaitingForEventDate
	WaitingForEventTime
	WaitingForEventCapacity
	WaitingForEventMessage
	WaitingForEventUser
	WaitingForWelcomeMessage
	WaitingForEventListMessage
	WaitingForBaseImage
	WaitingForChannelName
)

var sessionKindNames = map[SessionKind]string{
	NoSession:                  "none",
	WaitingForEvent:            "add-event",
	WaitingForEventName:        "event-name",
	WaitingForEventDate:        "event-date",
	WaitingForEventTime:        "event-time",
	WaitingForEventCapacity:    "event-capacity",
	WaitingForEventMessage:     "event-message",
	WaitingForEventUser:        "event-add",
	WaitingForWelcomeMessage:   "add-message",
	WaitingForEventListMessage: "add-emessage",
	WaitingForBaseImage:        "set-base-image",
	WaitingForChannelName:      "add-channel",
}

func (k SessionKind) String() string {
	if s, ok := sessionKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Session records which multi-step form a chat is filling in.
type Session struct {
	Kind      SessionKind
	EventID   int // EventID is set for event-* forms.
	ChannelID int // ChannelID is set for channel forms.
}

// SessionStore keeps one pending form per chat. Sessions live in memory only
// and never expire: an abandoned form holds until /start clears it.
type SessionStore struct {
	sessions map[int64]Session
	mu       sync.RWMutex
}

// NewSessionStore creates an empty SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]Session),
	}
}

// Set replaces the pending form of a chat.
func (s *SessionStore) Set(chatID int64, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = session
}

// Get returns the pending form of a chat.
func (s *SessionStore) Get(chatID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	return session, ok
}

// Clear drops the pending form of a chat.
func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// EventForm is the parsed "name@date@time@capacity" message of the add-event form.
type EventForm struct {
	Name     string
	Date     time.Time
	Time     string
	Capacity int
}

const eventFormHelp = "Для добавления события отправьте сообщение в формате:\n" +
	"Название события@дата в формате 2024-09-30@время@количество свободных мест, числом\n\n" +
	"Пример:\n" +
	"Событие 1@2024-09-30@12:00@10"

// ParseEventForm validates the add-event message.
func ParseEventForm(text string) (EventForm, error) {
	parts := strings.Split(text, "@")
	if len(parts) != 4 {
		return EventForm{}, invalid("event", eventFormHelp)
	}
	name, err := ValidateName(parts[0])
	if err != nil {
		return EventForm{}, err
	}
	date, err := ValidateDate(parts[1])
	if err != nil {
		return EventForm{}, err
	}
	tm, err := ValidateTime(parts[2])
	if err != nil {
		return EventForm{}, err
	}
	capacity, err := ValidateCapacity(parts[3])
	if err != nil {
		return EventForm{}, err
	}
	return EventForm{Name: name, Date: date, Time: tm, Capacity: capacity}, nil
}

// ValidateName trims the name and rejects empty ones.
func ValidateName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", invalid("name", "Название не может быть пустым")
	}
	return name, nil
}

// ValidateDate parses a YYYY-MM-DD date.
func ValidateDate(s string) (time.Time, error) {
	d, err := parseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalid("date", "Неверный формат даты. Используйте YYYY-MM-DD, например 2024-09-30")
	}
	return d, nil
}

// ValidateTime accepts HH:MM and returns it normalized to two-digit hours.
func ValidateTime(s string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return "", invalid("time", "Неверный формат времени. Используйте ЧЧ:ММ, например 12:00")
	}
	return t.Format("15:04"), nil
}

// ValidateCapacity accepts a non-negative integer; 0 means unlimited.
func ValidateCapacity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, invalid("capacity", "Количество мест должно быть целым числом не меньше 0 (0 - без ограничений)")
	}
	return n, nil
}

// ValidateUsername strips a leading @ and rejects empty or multi-word names.
func ValidateUsername(s string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(s), "@")
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return "", invalid("username", "Введите username участника, например @alice")
	}
	return name, nil
}
