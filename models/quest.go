package models

import "time"

// TaskQuest is a single gamified wellness task served by
// GET /api/task-quests.
type TaskQuest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	XP          int        `json:"xp,omitempty"`
	Completed   bool       `json:"completed"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

// QuestList is the response body of GET /api/task-quests.
type QuestList struct {
	// Quests is the ordered list of quests for the current user.
	Quests []TaskQuest `json:"quests"`

	// Length is the total number of entries in Quests. Provided for
	// convenience so the client can pre-allocate or validate the response
	// without iterating the slice.
	Length int `json:"length,omitempty"`
}
