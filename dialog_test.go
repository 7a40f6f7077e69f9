package main

import (
	"errors"
	"testing"
)

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()
	if _, ok := s.Get(1); ok {
		t.Fatal("empty store returned a session")
	}
	s.Set(1, Session{Kind: WaitingForEventName, EventID: 5})
	s.Set(2, Session{Kind: WaitingForChannelName})

	got, ok := s.Get(1)
	if !ok || got.Kind != WaitingForEventName || got.EventID != 5 {
		t.Fatalf("Get(1) = %+v, %v", got, ok)
	}

	s.Set(1, Session{Kind: WaitingForEventDate, EventID: 5})
	if got, _ := s.Get(1); got.Kind != WaitingForEventDate {
		t.Fatalf("Set did not replace: %+v", got)
	}

	s.Clear(1)
	if _, ok := s.Get(1); ok {
		t.Fatal("session survived Clear")
	}
	if _, ok := s.Get(2); !ok {
		t.Fatal("Clear removed another chat's session")
	}
}

func TestParseEventForm(t *testing.T) {
	form, err := ParseEventForm("Событие 1@2024-09-30@9:05@10")
	if err != nil {
		t.Fatal(err)
	}
	if form.Name != "Событие 1" || form.Time != "09:05" || form.Capacity != 10 || !form.Date.Equal(day("2024-09-30")) {
		t.Fatalf("form = %+v", form)
	}

	tests := []struct {
		input string
		field string
	}{
		{"only name", "event"},
		{"a@b@c@d@e", "event"},
		{" @2024-09-30@12:00@1", "name"},
		{"x@30.09.2024@12:00@1", "date"},
		{"x@2024-09-30@noon@1", "time"},
		{"x@2024-09-30@12:00@many", "capacity"},
		{"x@2024-09-30@12:00@-1", "capacity"},
	}
	for _, tt := range tests {
		_, err := ParseEventForm(tt.input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%q: err = %v, want ValidationError", tt.input, err)
			continue
		}
		if verr.Field != tt.field {
			t.Errorf("%q: field = %s, want %s", tt.input, verr.Field, tt.field)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if u, err := ValidateUsername(" @alice "); err != nil || u != "alice" {
		t.Fatalf("got %q, %v", u, err)
	}
	for _, bad := range []string{"", "@", "two words"} {
		if _, err := ValidateUsername(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}
