package store

import (
	"context"
	"fmt"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

type progressLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewProgressLogRepository(db *DB, logger *logger.Logger) ProgressLogRepository {
	return &progressLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *progressLogRepository) SaveProgressUpdate(ctx context.Context, update models.ProgressUpdate) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, saveProgressUpdate,
		update.ClientSideID,
		update.QuestID,
		update.Percent,
		update.Note,
		update.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "progressLogRepository.SaveProgressUpdate").
			Str("client_side_id", update.ClientSideID).
			Str("quest_id", update.QuestID).
			Msg("failed to execute insert for progress update")
		return fmt.Errorf("%w: save progress update (client_side_id=%s): %w", ErrExecutingStatement, update.ClientSideID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", update.ClientSideID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w (client_side_id=%s)", ErrProgressUpdateNotSaved, update.ClientSideID)
	}

	return nil
}

func (p *progressLogRepository) ProgressHistory(ctx context.Context, questID string) ([]models.ProgressUpdate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProgressHistoryQuery(questID)
	if err != nil {
		log.Err(err).
			Str("func", "progressLogRepository.ProgressHistory").
			Msg("failed to build progress history query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "progressLogRepository.ProgressHistory").
			Str("quest_id", questID).
			Msg("failed to execute query for progress history")
		return nil, fmt.Errorf("%w: progress history: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var updates []models.ProgressUpdate

	for rows.Next() {
		var update models.ProgressUpdate

		scanErr := rows.Scan(
			&update.ClientSideID,
			&update.QuestID,
			&update.Percent,
			&update.Note,
			&update.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "progressLogRepository.ProgressHistory").
				Msg("failed to scan progress update row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		updates = append(updates, update)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "progressLogRepository.ProgressHistory").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return updates, nil
}
