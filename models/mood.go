package models

import "time"

// MoodEntry is the payload submitted to POST /api/mood-tracking and the
// record kept in the local journal for trend history. Only Mood is required;
// the server accepts partial entries.
type MoodEntry struct {
	// ClientSideID is the UUID assigned by the client before the entry is
	// journaled. Empty on entries that were never persisted locally.
	ClientSideID string `json:"client_side_id,omitempty"`

	// Mood is the short mood label chosen by the user (e.g. "calm",
	// "stressed", "energized").
	Mood string `json:"mood"`

	// Emoji is the optional emoji the user attached to the entry.
	Emoji string `json:"emoji,omitempty"`

	// Note is an optional free-form note describing the mood.
	Note string `json:"note,omitempty"`

	// RecordedAt is the moment the entry was captured. Zero when the caller
	// leaves stamping to the service layer.
	RecordedAt time.Time `json:"recorded_at,omitzero"`
}

// MoodFilter narrows journal reads for mood trend views.
type MoodFilter struct {
	// Since excludes entries recorded before this moment when non-zero.
	Since time.Time
	// Mood restricts results to a single mood label when non-empty.
	Mood string
	// Limit caps the number of returned entries when positive.
	Limit int
}
