package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

type reminderRepository struct {
	*DB
	logger *logger.Logger
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	return &reminderRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reminderRepository) SaveReminder(ctx context.Context, reminder models.Reminder) error {
	log := logger.FromContext(ctx)

	var lastFiredAt sql.NullTime
	if reminder.LastFiredAt != nil {
		lastFiredAt = sql.NullTime{Time: *reminder.LastFiredAt, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, saveReminder,
		reminder.ClientSideID,
		reminder.Kind,
		reminder.Message,
		int64(reminder.Interval),
		reminder.Enabled,
		lastFiredAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.SaveReminder").
			Str("client_side_id", reminder.ClientSideID).
			Str("kind", reminder.Kind).
			Msg("failed to execute upsert for reminder")
		return fmt.Errorf("%w: save reminder (client_side_id=%s): %w", ErrExecutingStatement, reminder.ClientSideID, err)
	}

	return nil
}

func (r *reminderRepository) GetAllReminders(ctx context.Context) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllReminders)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.GetAllReminders").
			Msg("failed to execute query for getting all reminders")
		return nil, fmt.Errorf("%w: all reminders: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reminders []models.Reminder

	for rows.Next() {
		var (
			reminder    models.Reminder
			intervalNS  int64
			lastFiredAt sql.NullTime
		)

		scanErr := rows.Scan(
			&reminder.ClientSideID,
			&reminder.Kind,
			&reminder.Message,
			&intervalNS,
			&reminder.Enabled,
			&lastFiredAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reminderRepository.GetAllReminders").
				Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		reminder.Interval = time.Duration(intervalNS)
		if lastFiredAt.Valid {
			firedAt := lastFiredAt.Time
			reminder.LastFiredAt = &firedAt
		}

		reminders = append(reminders, reminder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reminderRepository.GetAllReminders").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reminders, nil
}

func (r *reminderRepository) MarkReminderFired(ctx context.Context, clientSideID string, firedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markReminderFired, firedAt, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.MarkReminderFired").
			Str("client_side_id", clientSideID).
			Msg("failed to execute update for reminder firing moment")
		return fmt.Errorf("%w: mark reminder fired (client_side_id=%s): %w", ErrExecutingStatement, clientSideID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", clientSideID, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "reminderRepository.MarkReminderFired").
			Str("client_side_id", clientSideID).
			Msg("no rows affected during mark fired: reminder not found")
		return fmt.Errorf("%w (client_side_id=%s)", ErrReminderNotFound, clientSideID)
	}

	return nil
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, clientSideID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteReminder, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.DeleteReminder").
			Str("client_side_id", clientSideID).
			Msg("failed to execute delete for reminder")
		return fmt.Errorf("%w: delete reminder (client_side_id=%s): %w", ErrExecutingStatement, clientSideID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", clientSideID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w (client_side_id=%s)", ErrReminderNotFound, clientSideID)
	}

	return nil
}
