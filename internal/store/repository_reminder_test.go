package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

// ── SaveReminder ─────────────────────────────────────────────────────────────

func TestReminders_SaveReminder_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	reminder := models.Reminder{
		ClientSideID: "rem-1",
		Kind:         models.ReminderHydration,
		Message:      "Выпей стакан воды",
		Interval:     45 * time.Minute,
		Enabled:      true,
	}

	mock.ExpectExec(regexp.QuoteMeta(saveReminder)).
		WithArgs(reminder.ClientSideID, reminder.Kind, reminder.Message, int64(reminder.Interval), reminder.Enabled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveReminder(testContext(), reminder)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminders_SaveReminder_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(saveReminder)).
		WillReturnError(errors.New("constraint failed"))

	err := repo.SaveReminder(testContext(), models.Reminder{ClientSideID: "rem-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── GetAllReminders ──────────────────────────────────────────────────────────

func TestReminders_GetAllReminders_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	firedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"client_side_id", "kind", "message", "interval_ns", "enabled", "last_fired_at"}).
		AddRow("rem-1", models.ReminderHydration, "Выпей стакан воды", int64(45*time.Minute), true, firedAt).
		AddRow("rem-2", models.ReminderBreak, "Сделай перерыв", int64(time.Hour), false, nil)

	mock.ExpectQuery(regexp.QuoteMeta(getAllReminders)).WillReturnRows(rows)

	got, err := repo.GetAllReminders(testContext())

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "rem-1", got[0].ClientSideID)
	assert.Equal(t, 45*time.Minute, got[0].Interval)
	require.NotNil(t, got[0].LastFiredAt)
	assert.Equal(t, firedAt, *got[0].LastFiredAt)

	assert.Equal(t, "rem-2", got[1].ClientSideID)
	assert.False(t, got[1].Enabled)
	assert.Nil(t, got[1].LastFiredAt)
}

func TestReminders_GetAllReminders_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getAllReminders)).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetAllReminders(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── MarkReminderFired ────────────────────────────────────────────────────────

func TestReminders_MarkReminderFired_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	firedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(markReminderFired)).
		WithArgs(firedAt, "rem-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkReminderFired(testContext(), "rem-1", firedAt)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminders_MarkReminderFired_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(markReminderFired)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkReminderFired(testContext(), "ghost", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

// ── DeleteReminder ───────────────────────────────────────────────────────────

func TestReminders_DeleteReminder_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteReminder)).
		WithArgs("rem-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteReminder(testContext(), "rem-1")

	require.NoError(t, err)
}

func TestReminders_DeleteReminder_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReminderRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteReminder)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteReminder(testContext(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}
