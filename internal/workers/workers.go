package workers

import (
	"context"
	"sync"
	"time"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

// defaultPollInterval is used when Start receives a non-positive interval.
const defaultPollInterval = time.Minute

// firedBuffer caps how many fired reminders can pile up before the UI
// consumes them.
const firedBuffer = 16

type reminderJob struct {
	source ReminderSource
	fired  chan models.Reminder

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReminderJob creates a reminderJob that polls source on a ticker. The job
// is idle until Start is called.
func NewReminderJob(source ReminderSource, log *logger.Logger) ReminderJob {
	return &reminderJob{
		source: source,
		fired:  make(chan models.Reminder, firedBuffer),
		logger: log,
	}
}

// Start implements ReminderJob. It stops any previously running job, then
// launches a background goroutine that polls the reminder schedule every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *reminderJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements ReminderJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *reminderJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Fired implements ReminderJob.
func (j *reminderJob) Fired() <-chan models.Reminder {
	return j.fired
}

// poll fires every due reminder once: it records the firing moment first,
// so a reminder dropped from the full channel is not re-fired on the next
// tick before its interval elapses again.
func (j *reminderJob) poll(ctx context.Context) {
	now := time.Now().UTC()

	due, err := j.source.DueReminders(ctx, now)
	if err != nil {
		j.logger.Warn().Err(err).
			Str("func", "reminderJob.poll").
			Msg("reading due reminders failed")
		return
	}

	for _, reminder := range due {
		if err = j.source.MarkFired(ctx, reminder.ClientSideID, now); err != nil {
			j.logger.Warn().Err(err).
				Str("func", "reminderJob.poll").
				Str("client_side_id", reminder.ClientSideID).
				Msg("marking reminder fired failed")
			continue
		}

		firedAt := now
		reminder.LastFiredAt = &firedAt

		select {
		case j.fired <- reminder:
		default:
			j.logger.Warn().
				Str("func", "reminderJob.poll").
				Str("client_side_id", reminder.ClientSideID).
				Msg("fired reminder dropped: channel full")
		}
	}
}
