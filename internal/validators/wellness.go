package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/neurox/neurox2-client/models"
)

// Field names accepted by [WellnessValidator.Validate] for scoped validation.
const (
	FieldMood             = "mood"
	FieldRecordedAt       = "recorded_at"
	FieldQuestID          = "quest_id"
	FieldPercent          = "percent"
	FieldReminderKind     = "kind"
	FieldReminderMessage  = "message"
	FieldReminderInterval = "interval"
)

var allowedReminderKinds = []string{
	models.ReminderHydration,
	models.ReminderBreak,
	models.ReminderExercise,
}

// WellnessValidator validates the payloads submitted to the wellness server
// and the locally scheduled reminders before they reach the journal.
type WellnessValidator struct {
}

func NewWellnessValidator() Validator {
	return &WellnessValidator{}
}

// Validate implements [Validator]. Supported types: [models.MoodEntry],
// [models.ProgressUpdate], [models.Reminder] and pointers to them. With no
// field names all rules for the type are checked; otherwise only the named
// fields are.
func (v *WellnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MoodEntry:
		return v.validateMoodEntry(ctx, value, fields...)
	case *models.MoodEntry:
		return v.validateMoodEntry(ctx, *value, fields...)

	case models.ProgressUpdate:
		return v.validateProgressUpdate(ctx, value, fields...)
	case *models.ProgressUpdate:
		return v.validateProgressUpdate(ctx, *value, fields...)

	case models.Reminder:
		return v.validateReminder(ctx, value, fields...)
	case *models.Reminder:
		return v.validateReminder(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *WellnessValidator) validateMoodEntry(_ context.Context, entry models.MoodEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMood, FieldRecordedAt}
	}

	for _, field := range fields {
		switch field {
		case FieldMood:
			if entry.Mood == "" {
				return ErrEmptyMood
			}
		case FieldRecordedAt:
			if entry.RecordedAt.IsZero() {
				return ErrEmptyRecordedAt
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *WellnessValidator) validateProgressUpdate(_ context.Context, update models.ProgressUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestID, FieldPercent}
	}

	for _, field := range fields {
		switch field {
		case FieldQuestID:
			if update.QuestID == "" {
				return ErrEmptyQuestID
			}
		case FieldPercent:
			if update.Percent < 0 || update.Percent > 100 {
				return fmt.Errorf("%w: got %d", ErrInvalidPercent, update.Percent)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *WellnessValidator) validateReminder(_ context.Context, reminder models.Reminder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReminderKind, FieldReminderMessage, FieldReminderInterval}
	}

	for _, field := range fields {
		switch field {
		case FieldReminderKind:
			if !slices.Contains(allowedReminderKinds, reminder.Kind) {
				return fmt.Errorf("%w: %q", ErrUnknownReminderKind, reminder.Kind)
			}
		case FieldReminderMessage:
			if reminder.Message == "" {
				return ErrEmptyReminderMessage
			}
		case FieldReminderInterval:
			if reminder.Interval <= 0 {
				return fmt.Errorf("%w: got %s", ErrInvalidReminderInterval, reminder.Interval)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
