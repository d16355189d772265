// Package workers runs the client's background jobs. The only job today is
// the reminder scheduler: it polls the local reminder schedule on a ticker
// and publishes fired reminders for the UI to display.
package workers

import (
	"context"
	"time"

	"github.com/neurox/neurox2-client/models"
)

// ReminderSource is the slice of the reminder service the scheduler needs:
// reading what is due and recording what has fired.
type ReminderSource interface {
	DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error)
	MarkFired(ctx context.Context, clientSideID string, firedAt time.Time) error
}

// ReminderJob is a background scheduler for health reminders.
//
// Implementations are expected to spawn a goroutine on Start and fully tear
// it down on Stop.
type ReminderJob interface {
	// Start launches the polling goroutine. A non-positive interval falls
	// back to the default. Calling Start on a running job restarts it.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the polling goroutine and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()

	// Fired returns the channel on which fired reminders are published. The
	// channel is buffered; reminders are dropped when nobody is receiving.
	Fired() <-chan models.Reminder
}
