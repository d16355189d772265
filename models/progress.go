package models

import "time"

// ProgressUpdate is the payload submitted to POST /api/progress-tracking and
// the record kept in the local journal.
type ProgressUpdate struct {
	// ClientSideID is the UUID assigned by the client before the update is
	// journaled.
	ClientSideID string `json:"client_side_id,omitempty"`

	// QuestID identifies the quest this update belongs to.
	QuestID string `json:"quest_id"`

	// Percent is the completion percentage in the range 0-100.
	Percent int `json:"percent"`

	// Note is an optional free-form note attached to the update.
	Note string `json:"note,omitempty"`

	// UpdatedAt is the moment the update was captured. Zero when the caller
	// leaves stamping to the service layer.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}
