package models

import "time"

// Reminder kinds supported by the health reminder scheduler.
const (
	ReminderHydration = "hydration"
	ReminderBreak     = "break"
	ReminderExercise  = "exercise"
)

// Reminder is a locally scheduled health reminder. Reminders never leave the
// client; the scheduler fires them whenever Interval has elapsed since
// LastFiredAt.
type Reminder struct {
	// ClientSideID is the UUID identifying the reminder in the journal.
	ClientSideID string `json:"client_side_id"`

	// Kind is one of the Reminder* constants.
	Kind string `json:"kind"`

	// Message is the text shown to the user when the reminder fires.
	Message string `json:"message"`

	// Interval is how often the reminder should fire.
	Interval time.Duration `json:"interval"`

	// Enabled suspends firing when false without deleting the schedule.
	Enabled bool `json:"enabled"`

	// LastFiredAt is the moment the reminder last fired, nil if it never has.
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
}

// Due reports whether the reminder should fire at the given moment.
func (r Reminder) Due(now time.Time) bool {
	if !r.Enabled || r.Interval <= 0 {
		return false
	}
	if r.LastFiredAt == nil {
		return true
	}
	return !now.Before(r.LastFiredAt.Add(r.Interval))
}
