package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// CreateEvent adds an event to the channel. The id is allocated under the
// Registrar lock.
func (r *Registrar) CreateEvent(ctx context.Context, channelID int, form EventForm) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.repo.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}
	ev := &Event{
		ChannelID: channelID,
		Name:      form.Name,
		Date:      form.Date,
		Time:      form.Time,
		Capacity:  form.Capacity,
	}
	if err := r.repo.InsertEvent(ctx, ev); err != nil {
		return nil, err
	}
	log.Info().Int("event_id", ev.ID).Int("channel_id", channelID).Str("name", ev.Name).Msg("Event created")
	return ev, nil
}

// SetEventName renames the event.
func (r *Registrar) SetEventName(ctx context.Context, eventID int, name string) (*Event, error) {
	return r.mutateEvent(ctx, eventID, func(ev *Event) error {
		ev.Name = name
		return nil
	})
}

// SetEventDate moves the event and its pending reminders in one critical section.
func (r *Registrar) SetEventDate(ctx context.Context, eventID int, date time.Time) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.mutateEventLocked(ctx, eventID, func(ev *Event) error {
		ev.Date = civilDate(date)
		return nil
	})
	if err != nil {
		return nil, err
	}
	moved, err := r.repo.RescheduleNotifications(ctx, ev.ID, ev.ReminderDate())
	if err != nil {
		log.Error().Err(err).Int("event_id", ev.ID).Msg("Failed to reschedule reminders")
	} else if moved > 0 {
		log.Info().Int("event_id", ev.ID).Int64("reminders", moved).Msg("Reminders rescheduled")
	}
	return ev, nil
}

// SetEventTime changes the start time.
func (r *Registrar) SetEventTime(ctx context.Context, eventID int, tm string) (*Event, error) {
	return r.mutateEvent(ctx, eventID, func(ev *Event) error {
		ev.Time = tm
		return nil
	})
}

// SetEventCapacity changes the place limit. A limit below the current number
// of registrants keeps them all and only blocks new registrations.
func (r *Registrar) SetEventCapacity(ctx context.Context, eventID, capacity int) (*Event, error) {
	return r.mutateEvent(ctx, eventID, func(ev *Event) error {
		ev.Capacity = capacity
		return nil
	})
}

// SetEventMessage attaches the reminder message blob and returns the blob id
// it replaced.
func (r *Registrar) SetEventMessage(ctx context.Context, eventID int, blobID string) (string, *Event, error) {
	var old string
	ev, err := r.mutateEvent(ctx, eventID, func(ev *Event) error {
		old, ev.WelcomeMessage = ev.WelcomeMessage, blobID
		return nil
	})
	return old, ev, err
}

// ToggleHidden flips the hidden flag.
func (r *Registrar) ToggleHidden(ctx context.Context, eventID int) (*Event, error) {
	return r.mutateEvent(ctx, eventID, func(ev *Event) error {
		ev.Hidden = !ev.Hidden
		return nil
	})
}

// DeleteEvent removes the event with its reminders and returns what was deleted.
func (r *Registrar) DeleteEvent(ctx context.Context, eventID int) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := r.repo.DeleteEvent(ctx, eventID); err != nil {
		return nil, err
	}
	log.Info().Int("event_id", ev.ID).Int("channel_id", ev.ChannelID).Msg("Event deleted")
	return ev, nil
}

// DeletePastEvents removes the channel's events dated before today.
func (r *Registrar) DeletePastEvents(ctx context.Context, channelID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.repo.DeleteEventsBefore(ctx, channelID, civilDate(r.now()))
	if err != nil {
		return 0, err
	}
	log.Info().Int("channel_id", channelID).Int64("deleted", n).Msg("Past events deleted")
	return n, nil
}
