// Package tui implements the terminal user interface of the NeuroX2 wellness
// client: a dashboard from which the user tracks mood, works through quests,
// reads the support forum, consults the mental ally, checks burnout, and
// manages health reminders.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/service"
	"github.com/neurox/neurox2-client/models"
)

type TUI struct {
	services *service.ClientServices

	logger *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not set")
	}

	return &TUI{services: services, logger: log}, nil
}

// MainLoop runs the interactive UI until the user quits. fired is the
// reminder job's channel of fired reminders; pass nil to run without
// reminder banners.
func (t *TUI) MainLoop(ctx context.Context, fired <-chan models.Reminder) error {
	model := newMainLoopModel(ctx, t.services, fired)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.MainLoop").Msg("tui program failed")
		return err
	}

	return nil
}
