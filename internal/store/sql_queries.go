// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/neurox/neurox2-client/models"
)

const (
	saveMoodEntry = `
		INSERT INTO mood_entries (
			client_side_id,
			mood,
			emoji,
			note,
			recorded_at
		) VALUES (?, ?, ?, ?, ?);`

	saveProgressUpdate = `
		INSERT INTO progress_updates (
			client_side_id,
			quest_id,
			percent,
			note,
			updated_at
		) VALUES (?, ?, ?, ?, ?);`

	saveReminder = `
		INSERT OR REPLACE INTO reminders (
			client_side_id,
			kind,
			message,
			interval_ns,
			enabled,
			last_fired_at
		) VALUES (?, ?, ?, ?, ?, ?);`

	markReminderFired = `
		UPDATE reminders
		SET last_fired_at = ?
		WHERE client_side_id = ?;`

	deleteReminder = `
		DELETE FROM reminders
		WHERE client_side_id = ?;`

	getAllReminders = `
		SELECT
			client_side_id,
			kind,
			message,
			interval_ns,
			enabled,
			last_fired_at
		FROM reminders
		ORDER BY client_side_id;`
)

// buildMoodHistoryQuery builds the filtered mood trend SELECT. All filter
// fields are optional; the zero filter returns the full history, newest
// entries first.
func buildMoodHistoryQuery(filter models.MoodFilter) (string, []any, error) {
	qb := sq.Select(
		"client_side_id",
		"mood",
		"emoji",
		"note",
		"recorded_at",
	).
		From("mood_entries").
		OrderBy("recorded_at DESC")

	if !filter.Since.IsZero() {
		qb = qb.Where(sq.GtOrEq{"recorded_at": filter.Since})
	}
	if filter.Mood != "" {
		qb = qb.Where(sq.Eq{"mood": filter.Mood})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	return qb.ToSql()
}

// buildProgressHistoryQuery builds the progress log SELECT. An empty questID
// returns updates for all quests.
func buildProgressHistoryQuery(questID string) (string, []any, error) {
	qb := sq.Select(
		"client_side_id",
		"quest_id",
		"percent",
		"note",
		"updated_at",
	).
		From("progress_updates").
		OrderBy("updated_at DESC")

	if questID != "" {
		qb = qb.Where(sq.Eq{"quest_id": questID})
	}

	return qb.ToSql()
}
