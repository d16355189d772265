// Package store implements the local wellness journal: an SQLite database
// holding mood history, quest progress logs, and the health reminder
// schedule. The journal never leaves the device; the wellness server only
// receives the payloads submitted through the adapter.
package store

import (
	"context"
	"time"

	"github.com/neurox/neurox2-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_store_mock.go -package=mock

// MoodJournalRepository persists submitted mood entries so the client can
// show mood trends over time without asking the server.
type MoodJournalRepository interface {
	// SaveMoodEntry appends one mood entry to the journal. The entry must
	// already carry a ClientSideID and a non-zero RecordedAt.
	SaveMoodEntry(ctx context.Context, entry models.MoodEntry) error

	// MoodHistory returns journaled entries, newest first, narrowed by
	// filter (Since, Mood, Limit — all optional).
	MoodHistory(ctx context.Context, filter models.MoodFilter) ([]models.MoodEntry, error)
}

// ProgressLogRepository persists submitted quest progress updates.
type ProgressLogRepository interface {
	// SaveProgressUpdate appends one progress update to the journal.
	SaveProgressUpdate(ctx context.Context, update models.ProgressUpdate) error

	// ProgressHistory returns journaled updates, newest first. A non-empty
	// questID restricts results to a single quest.
	ProgressHistory(ctx context.Context, questID string) ([]models.ProgressUpdate, error)
}

// ReminderRepository stores the customizable health reminder schedule.
type ReminderRepository interface {
	// SaveReminder inserts the reminder or replaces an existing one with the
	// same ClientSideID.
	SaveReminder(ctx context.Context, reminder models.Reminder) error

	// GetAllReminders returns every scheduled reminder, including disabled
	// ones, ordered by ClientSideID.
	GetAllReminders(ctx context.Context) ([]models.Reminder, error)

	// MarkReminderFired records firedAt as the reminder's last firing moment.
	// Returns [ErrReminderNotFound] if no reminder has the given ID.
	MarkReminderFired(ctx context.Context, clientSideID string, firedAt time.Time) error

	// DeleteReminder removes the reminder from the schedule.
	// Returns [ErrReminderNotFound] if no reminder has the given ID.
	DeleteReminder(ctx context.Context, clientSideID string) error
}
