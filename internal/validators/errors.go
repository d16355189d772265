package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMood               = errors.New("mood is required")
	ErrEmptyRecordedAt         = errors.New("recorded at moment is required")
	ErrEmptyQuestID            = errors.New("quest id is required")
	ErrInvalidPercent          = errors.New("percent must be between 0 and 100")
	ErrUnknownReminderKind     = errors.New("unknown reminder kind")
	ErrEmptyReminderMessage    = errors.New("reminder message is required")
	ErrInvalidReminderInterval = errors.New("reminder interval must be positive")
)
