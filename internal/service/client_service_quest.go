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

type clientQuestService struct {
	wellnessAdapter adapter.WellnessAdapter
	progressLog     store.ProgressLogRepository
	validator       validators.Validator
	uuids           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientQuestService(
	wellnessAdapter adapter.WellnessAdapter,
	progressLog store.ProgressLogRepository,
	logger *logger.Logger,
) ClientQuestService {
	return &clientQuestService{
		wellnessAdapter: wellnessAdapter,
		progressLog:     progressLog,
		validator:       validators.NewWellnessValidator(),
		uuids:           utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// Quests implements [ClientQuestService].
func (q *clientQuestService) Quests(ctx context.Context) (models.QuestList, error) {
	quests, err := q.wellnessAdapter.FetchTaskQuests(ctx)
	if err != nil {
		return models.QuestList{}, mapAdapterError(err)
	}

	return quests, nil
}

// TrackProgress implements [ClientQuestService]. Same submission contract as
// [ClientCheckinService.TrackMood]: stamp first, submit, then journal; a
// journal write failure is logged, not returned.
func (q *clientQuestService) TrackProgress(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error) {
	if err := q.validator.Validate(ctx, update); err != nil {
		return models.ProgressUpdate{}, fmt.Errorf("validate progress update: %w", err)
	}

	if update.ClientSideID == "" {
		update.ClientSideID = q.uuids.Generate()
	}
	if update.UpdatedAt.IsZero() {
		update.UpdatedAt = time.Now().UTC()
	}

	ack, err := q.wellnessAdapter.TrackProgress(ctx, update)
	if err != nil {
		return models.ProgressUpdate{}, mapAdapterError(err)
	}
	q.logger.Debug().
		Str("func", "clientQuestService.TrackProgress").
		Str("client_side_id", update.ClientSideID).
		Str("quest_id", update.QuestID).
		Str("ack_status", ack.Status).
		Msg("progress update submitted")

	if err = q.progressLog.SaveProgressUpdate(ctx, update); err != nil {
		q.logger.Warn().Err(err).
			Str("func", "clientQuestService.TrackProgress").
			Str("client_side_id", update.ClientSideID).
			Msg("progress update submitted but not journaled")
	}

	return update, nil
}

// ProgressHistory implements [ClientQuestService].
func (q *clientQuestService) ProgressHistory(ctx context.Context, questID string) ([]models.ProgressUpdate, error) {
	updates, err := q.progressLog.ProgressHistory(ctx, questID)
	if err != nil {
		return nil, fmt.Errorf("read progress history: %w", err)
	}

	return updates, nil
}
