package service

import (
	"context"
	"fmt"
	"time"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/store"
	"github.com/neurox/neurox2-client/internal/utils"
	"github.com/neurox/neurox2-client/internal/validators"
	"github.com/neurox/neurox2-client/models"
)

type clientCheckinService struct {
	wellnessAdapter adapter.WellnessAdapter
	moodJournal     store.MoodJournalRepository
	validator       validators.Validator
	uuids           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientCheckinService(
	wellnessAdapter adapter.WellnessAdapter,
	moodJournal store.MoodJournalRepository,
	logger *logger.Logger,
) ClientCheckinService {
	return &clientCheckinService{
		wellnessAdapter: wellnessAdapter,
		moodJournal:     moodJournal,
		validator:       validators.NewWellnessValidator(),
		uuids:           utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// TrackMood implements [ClientCheckinService]. The entry is stamped before
// submission, so the journal record and the server payload are identical. A
// journal write failure after a successful submission is logged but not
// returned: the check-in reached the server, only the local trend history
// degrades.
func (c *clientCheckinService) TrackMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	if err := c.validator.Validate(ctx, entry, validators.FieldMood); err != nil {
		return models.MoodEntry{}, fmt.Errorf("validate mood entry: %w", err)
	}

	if entry.ClientSideID == "" {
		entry.ClientSideID = c.uuids.Generate()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	ack, err := c.wellnessAdapter.TrackMood(ctx, entry)
	if err != nil {
		return models.MoodEntry{}, mapAdapterError(err)
	}
	c.logger.Debug().
		Str("func", "clientCheckinService.TrackMood").
		Str("client_side_id", entry.ClientSideID).
		Str("ack_status", ack.Status).
		Msg("mood entry submitted")

	if err = c.moodJournal.SaveMoodEntry(ctx, entry); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "clientCheckinService.TrackMood").
			Str("client_side_id", entry.ClientSideID).
			Msg("mood entry submitted but not journaled")
	}

	return entry, nil
}

// MoodHistory implements [ClientCheckinService].
func (c *clientCheckinService) MoodHistory(ctx context.Context, filter models.MoodFilter) ([]models.MoodEntry, error) {
	entries, err := c.moodJournal.MoodHistory(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("read mood history: %w", err)
	}

	return entries, nil
}

// CheckBurnout implements [ClientCheckinService].
func (c *clientCheckinService) CheckBurnout(ctx context.Context) (models.BurnoutResult, error) {
	result, err := c.wellnessAdapter.CheckBurnout(ctx)
	if err != nil {
		return models.BurnoutResult{}, mapAdapterError(err)
	}

	return result, nil
}

// FetchAlly implements [ClientCheckinService].
func (c *clientCheckinService) FetchAlly(ctx context.Context) (models.MentalAllyData, error) {
	ally, err := c.wellnessAdapter.FetchMentalAllyData(ctx)
	if err != nil {
		return models.MentalAllyData{}, mapAdapterError(err)
	}

	return ally, nil
}
