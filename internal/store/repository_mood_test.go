// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── SaveMoodEntry ────────────────────────────────────────────────────────────

func TestMoodJournal_SaveMoodEntry_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	entry := models.MoodEntry{
		ClientSideID: "0190c3a4-0000-7000-8000-000000000001",
		Mood:         "calm",
		Emoji:        "🙂",
		Note:         "спокойный день",
		RecordedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(saveMoodEntry)).
		WithArgs(entry.ClientSideID, entry.Mood, entry.Emoji, entry.Note, entry.RecordedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveMoodEntry(testContext(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodJournal_SaveMoodEntry_NoRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(saveMoodEntry)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveMoodEntry(testContext(), models.MoodEntry{ClientSideID: "id-1", Mood: "calm"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMoodEntryNotSaved)
}

func TestMoodJournal_SaveMoodEntry_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(saveMoodEntry)).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveMoodEntry(testContext(), models.MoodEntry{ClientSideID: "id-1", Mood: "calm"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── MoodHistory ──────────────────────────────────────────────────────────────

func moodHistoryRows(entries ...models.MoodEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"client_side_id", "mood", "emoji", "note", "recorded_at"})
	for _, e := range entries {
		rows.AddRow(e.ClientSideID, e.Mood, e.Emoji, e.Note, e.RecordedAt)
	}
	return rows
}

func TestMoodJournal_MoodHistory_NoFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	want := []models.MoodEntry{
		{ClientSideID: "id-2", Mood: "energized", RecordedAt: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)},
		{ClientSideID: "id-1", Mood: "calm", RecordedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
	}

	query, _, err := buildMoodHistoryQuery(models.MoodFilter{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(moodHistoryRows(want...))

	got, err := repo.MoodHistory(testContext(), models.MoodFilter{})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMoodJournal_MoodHistory_WithFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := models.MoodFilter{Since: since, Mood: "calm", Limit: 5}

	query, args, err := buildMoodHistoryQuery(filter)
	require.NoError(t, err)
	require.Len(t, args, 2)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(since, "calm").
		WillReturnRows(moodHistoryRows())

	got, err := repo.MoodHistory(testContext(), filter)

	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodJournal_MoodHistory_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.MoodHistory(testContext(), models.MoodFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMoodJournal_MoodHistory_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoodJournalRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows([]string{"client_side_id", "mood", "emoji", "note", "recorded_at"}).
		AddRow("id-1", "calm", "", "", "not-a-time")

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.MoodHistory(testContext(), models.MoodFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}
