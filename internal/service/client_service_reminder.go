package service

import (
	"context"
	"fmt"
	"time"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/store"
	"github.com/neurox/neurox2-client/internal/utils"
	"github.com/neurox/neurox2-client/internal/validators"
	"github.com/neurox/neurox2-client/models"
)

type clientReminderService struct {
	reminders store.ReminderRepository
	validator validators.Validator
	uuids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientReminderService(reminders store.ReminderRepository, logger *logger.Logger) ClientReminderService {
	return &clientReminderService{
		reminders: reminders,
		validator: validators.NewWellnessValidator(),
		uuids:     utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Schedule implements [ClientReminderService].
func (r *clientReminderService) Schedule(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	if err := r.validator.Validate(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("validate reminder: %w", err)
	}

	if reminder.ClientSideID == "" {
		reminder.ClientSideID = r.uuids.Generate()
	}

	if err := r.reminders.SaveReminder(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("schedule reminder: %w", err)
	}
	r.logger.Debug().
		Str("func", "clientReminderService.Schedule").
		Str("client_side_id", reminder.ClientSideID).
		Str("kind", reminder.Kind).
		Dur("interval", reminder.Interval).
		Msg("reminder scheduled")

	return reminder, nil
}

// Reminders implements [ClientReminderService].
func (r *clientReminderService) Reminders(ctx context.Context) ([]models.Reminder, error) {
	reminders, err := r.reminders.GetAllReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reminder schedule: %w", err)
	}

	return reminders, nil
}

// SetEnabled implements [ClientReminderService].
func (r *clientReminderService) SetEnabled(ctx context.Context, clientSideID string, enabled bool) error {
	reminders, err := r.reminders.GetAllReminders(ctx)
	if err != nil {
		return fmt.Errorf("read reminder schedule: %w", err)
	}

	for _, reminder := range reminders {
		if reminder.ClientSideID != clientSideID {
			continue
		}

		reminder.Enabled = enabled
		if err = r.reminders.SaveReminder(ctx, reminder); err != nil {
			return fmt.Errorf("update reminder (client_side_id=%s): %w", clientSideID, err)
		}
		return nil
	}

	return fmt.Errorf("%w (client_side_id=%s)", store.ErrReminderNotFound, clientSideID)
}

// Delete implements [ClientReminderService].
func (r *clientReminderService) Delete(ctx context.Context, clientSideID string) error {
	if err := r.reminders.DeleteReminder(ctx, clientSideID); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	return nil
}

// DueReminders implements [ClientReminderService].
func (r *clientReminderService) DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	reminders, err := r.reminders.GetAllReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reminder schedule: %w", err)
	}

	var due []models.Reminder
	for _, reminder := range reminders {
		if reminder.Due(now) {
			due = append(due, reminder)
		}
	}

	return due, nil
}

// MarkFired implements [ClientReminderService].
func (r *clientReminderService) MarkFired(ctx context.Context, clientSideID string, firedAt time.Time) error {
	if err := r.reminders.MarkReminderFired(ctx, clientSideID, firedAt); err != nil {
		return fmt.Errorf("mark reminder fired: %w", err)
	}

	return nil
}
