package service

import (
	"errors"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/store"
)

// ClientServices groups all client-side services into a single value that is
// passed to the TUI and the background workers.
type ClientServices struct {
	CheckinService  ClientCheckinService
	QuestService    ClientQuestService
	ForumService    ClientForumService
	FeatureService  ClientFeatureService
	ReminderService ClientReminderService
}

// NewClientServices wires the wellness adapter and the journal repositories
// into the full client service set.
func NewClientServices(storages *store.JournalStorages, wellnessAdapter adapter.WellnessAdapter, log *logger.Logger) (*ClientServices, error) {
	if storages == nil {
		return nil, errors.New("journal storages are required")
	}
	if wellnessAdapter == nil {
		return nil, errors.New("wellness adapter is required")
	}

	return &ClientServices{
		CheckinService:  NewClientCheckinService(wellnessAdapter, storages.MoodJournal, log),
		QuestService:    NewClientQuestService(wellnessAdapter, storages.ProgressLog, log),
		ForumService:    NewClientForumService(wellnessAdapter, log),
		FeatureService:  NewClientFeatureService(wellnessAdapter, log),
		ReminderService: NewClientReminderService(storages.Reminders, log),
	}, nil
}
