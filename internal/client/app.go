package client

import (
	"context"
	"errors"

	"github.com/neurox/neurox2-client/internal/config"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/service"
	"github.com/neurox/neurox2-client/internal/tui"
	"github.com/neurox/neurox2-client/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	job      workers.ReminderJob
	workers  config.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not set")
	}
	if ui == nil {
		return nil, errors.New("tui is not set")
	}

	job := workers.NewReminderJob(services.ReminderService, log.GetChildLogger())

	return &App{
		services: services,
		tui:      ui,
		job:      job,
		workers:  workersCfg,
		logger:   log,
	}, nil
}

// Run implements [Client]. It learns the server's feature set, starts the
// reminder scheduler and hands the terminal to the UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	// The feature set is informational: the client works fine against a
	// server that does not expose the endpoint.
	if _, err := a.services.FeatureService.IntegratedFeatures(ctx); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "App.Run").
			Msg("fetching integrated features failed")
	}

	a.job.Start(ctx, a.workers.ReminderInterval)
	defer a.job.Stop()

	return a.tui.MainLoop(ctx, a.job.Fired())
}
