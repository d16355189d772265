package store

import (
	"context"
	"fmt"

	"github.com/neurox/neurox2-client/internal/config"
	"github.com/neurox/neurox2-client/internal/logger"
)

// JournalStorages groups all journal repositories into a single value that
// can be passed around the service layer.
type JournalStorages struct {
	// MoodJournal is the SQLite-backed repository for submitted mood entries,
	// used by the mood trend views.
	MoodJournal MoodJournalRepository

	// ProgressLog is the SQLite-backed repository for submitted quest
	// progress updates.
	ProgressLog ProgressLogRepository

	// Reminders is the SQLite-backed repository for the health reminder
	// schedule.
	Reminders ReminderRepository
}

// NewJournalStorages initialises the local journal using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [JournalStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewJournalStorages(cfg config.Storage, logger *logger.Logger) (*JournalStorages, error) {
	logger.Info().Msg("creating journal storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &JournalStorages{
		MoodJournal: NewMoodJournalRepository(db, logger),
		ProgressLog: NewProgressLogRepository(db, logger),
		Reminders:   NewReminderRepository(db, logger),
	}, nil
}
