package tui

import (
	"github.com/neurox/neurox2-client/models"
)

type moodHistoryLoadedMsg struct {
	entries []models.MoodEntry
	err     error
}

type moodSavedMsg struct {
	entry models.MoodEntry
	err   error
}

type burnoutCheckedMsg struct {
	result models.BurnoutResult
	err    error
}

type allyLoadedMsg struct {
	ally models.MentalAllyData
	err  error
}

type questsLoadedMsg struct {
	quests models.QuestList
	err    error
}

type progressSavedMsg struct {
	update models.ProgressUpdate
	err    error
}

type progressHistoryLoadedMsg struct {
	questID string
	updates []models.ProgressUpdate
	err     error
}

type postsLoadedMsg struct {
	posts []models.ForumPost
	err   error
}

type remindersLoadedMsg struct {
	reminders []models.Reminder
	err       error
}

type reminderSavedMsg struct {
	err error
}

type reminderToggledMsg struct {
	err error
}

type reminderDeletedMsg struct {
	err error
}

type reminderFiredMsg struct {
	reminder models.Reminder
}
