package store

import (
	"context"
	"fmt"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

type moodJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewMoodJournalRepository(db *DB, logger *logger.Logger) MoodJournalRepository {
	return &moodJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *moodJournalRepository) SaveMoodEntry(ctx context.Context, entry models.MoodEntry) error {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, saveMoodEntry,
		entry.ClientSideID,
		entry.Mood,
		entry.Emoji,
		entry.Note,
		entry.RecordedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "moodJournalRepository.SaveMoodEntry").
			Str("client_side_id", entry.ClientSideID).
			Msg("failed to execute insert for mood entry")
		return fmt.Errorf("%w: save mood entry (client_side_id=%s): %w", ErrExecutingStatement, entry.ClientSideID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", entry.ClientSideID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w (client_side_id=%s)", ErrMoodEntryNotSaved, entry.ClientSideID)
	}

	return nil
}

func (m *moodJournalRepository) MoodHistory(ctx context.Context, filter models.MoodFilter) ([]models.MoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMoodHistoryQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "moodJournalRepository.MoodHistory").
			Msg("failed to build mood history query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "moodJournalRepository.MoodHistory").
			Msg("failed to execute query for mood history")
		return nil, fmt.Errorf("%w: mood history: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.MoodEntry

	for rows.Next() {
		var entry models.MoodEntry

		scanErr := rows.Scan(
			&entry.ClientSideID,
			&entry.Mood,
			&entry.Emoji,
			&entry.Note,
			&entry.RecordedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "moodJournalRepository.MoodHistory").
				Msg("failed to scan mood entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "moodJournalRepository.MoodHistory").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
