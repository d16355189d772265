// SPDX-License-Identifier: Apache-2.0

// Package service implements the client-side business logic of the NeuroX2
// wellness application. Services compose the wellness server adapter with the
// local journal: payloads are validated, stamped with client-side IDs, sent
// to the server, and mirrored into the journal so history views work without
// another round trip.
package service

import (
	"context"
	"time"

	"github.com/neurox/neurox2-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientCheckinService covers the daily check-in flows: mood tracking with
// local trend history, burnout checks, and mental ally suggestions.
type ClientCheckinService interface {
	// TrackMood validates the entry, assigns a client-side UUID, stamps the
	// recording moment if the caller left it zero, submits the entry to the
	// server, and appends it to the local mood journal. Returns the stamped
	// entry as it was submitted.
	TrackMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error)

	// MoodHistory returns journaled mood entries, newest first, narrowed by
	// filter. The history is read locally; no server call is made.
	MoodHistory(ctx context.Context, filter models.MoodFilter) ([]models.MoodEntry, error)

	// CheckBurnout fetches the current burnout assessment from the server.
	CheckBurnout(ctx context.Context) (models.BurnoutResult, error)

	// FetchAlly fetches the mental ally greeting and suggestion set from the
	// server.
	FetchAlly(ctx context.Context) (models.MentalAllyData, error)
}

// ClientQuestService covers the gamified wellness tasks: listing quests and
// tracking progress against them.
type ClientQuestService interface {
	// Quests fetches the current quest list from the server.
	Quests(ctx context.Context) (models.QuestList, error)

	// TrackProgress validates the update, assigns a client-side UUID, stamps
	// the update moment if the caller left it zero, submits the update to the
	// server, and appends it to the local progress log. Returns the stamped
	// update as it was submitted.
	TrackProgress(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error)

	// ProgressHistory returns journaled progress updates, newest first. A
	// non-empty questID restricts results to a single quest. The history is
	// read locally; no server call is made.
	ProgressHistory(ctx context.Context, questID string) ([]models.ProgressUpdate, error)
}

// ClientForumService covers the community forum views. The server returns a
// flat post list; topic grouping happens on the client.
type ClientForumService interface {
	// Posts fetches all forum posts from the server.
	Posts(ctx context.Context) ([]models.ForumPost, error)

	// PostsByTopic fetches all forum posts and returns only those whose
	// Topic equals topic. An empty topic returns everything.
	PostsByTopic(ctx context.Context, topic string) ([]models.ForumPost, error)

	// Topics fetches all forum posts and returns the distinct topics in
	// order of first appearance.
	Topics(ctx context.Context) ([]string, error)
}

// ClientFeatureService exposes the server-side feature toggles fetched at
// startup.
type ClientFeatureService interface {
	// IntegratedFeatures fetches the feature toggle set from the server and
	// logs the enabled feature names.
	IntegratedFeatures(ctx context.Context) (models.IntegratedFeatureSet, error)
}

// ClientReminderService manages the customizable health reminder schedule.
// Reminders are purely local; the scheduler in internal/workers drives the
// DueReminders/MarkFired cycle.
type ClientReminderService interface {
	// Schedule validates the reminder, assigns a client-side UUID if the
	// caller left it empty, and stores it in the journal. Returns the stored
	// reminder.
	Schedule(ctx context.Context, reminder models.Reminder) (models.Reminder, error)

	// Reminders returns every scheduled reminder, including disabled ones.
	Reminders(ctx context.Context) ([]models.Reminder, error)

	// SetEnabled suspends or resumes a reminder without deleting its
	// schedule. Returns [store.ErrReminderNotFound] (wrapped) for an unknown
	// ID.
	SetEnabled(ctx context.Context, clientSideID string, enabled bool) error

	// Delete removes the reminder from the schedule. Returns
	// [store.ErrReminderNotFound] (wrapped) for an unknown ID.
	Delete(ctx context.Context, clientSideID string) error

	// DueReminders returns the enabled reminders whose interval has elapsed
	// since their last firing as of now.
	DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error)

	// MarkFired records firedAt as the reminder's last firing moment.
	MarkFired(ctx context.Context, clientSideID string, firedAt time.Time) error
}
