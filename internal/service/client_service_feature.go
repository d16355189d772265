package service

import (
	"context"
	"strings"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

type clientFeatureService struct {
	wellnessAdapter adapter.WellnessAdapter

	logger *logger.Logger
}

func NewClientFeatureService(wellnessAdapter adapter.WellnessAdapter, logger *logger.Logger) ClientFeatureService {
	return &clientFeatureService{
		wellnessAdapter: wellnessAdapter,
		logger:          logger,
	}
}

// IntegratedFeatures implements [ClientFeatureService].
func (f *clientFeatureService) IntegratedFeatures(ctx context.Context) (models.IntegratedFeatureSet, error) {
	features, err := f.wellnessAdapter.FetchIntegratedFeatures(ctx)
	if err != nil {
		return models.IntegratedFeatureSet{}, mapAdapterError(err)
	}

	f.logger.Info().
		Str("func", "clientFeatureService.IntegratedFeatures").
		Str("enabled", strings.Join(features.Enabled(), ",")).
		Int("total", len(features.Features)).
		Msg("integrated feature set fetched")

	return features, nil
}
