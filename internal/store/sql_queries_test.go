// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurox/neurox2-client/models"
)

func TestBuildMoodHistoryQuery_NoFilter(t *testing.T) {
	query, args, err := buildMoodHistoryQuery(models.MoodFilter{})

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT client_side_id, mood, emoji, note, recorded_at FROM mood_entries ORDER BY recorded_at DESC",
		query,
	)
	assert.Empty(t, args)
}

func TestBuildMoodHistoryQuery_AllFilters(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildMoodHistoryQuery(models.MoodFilter{
		Since: since,
		Mood:  "calm",
		Limit: 7,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT client_side_id, mood, emoji, note, recorded_at FROM mood_entries "+
			"WHERE recorded_at >= ? AND mood = ? ORDER BY recorded_at DESC LIMIT 7",
		query,
	)
	assert.Equal(t, []any{since, "calm"}, args)
}

func TestBuildMoodHistoryQuery_SinceOnly(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildMoodHistoryQuery(models.MoodFilter{Since: since})

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE recorded_at >= ?")
	assert.NotContains(t, query, "mood = ?")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []any{since}, args)
}

func TestBuildProgressHistoryQuery_AllQuests(t *testing.T) {
	query, args, err := buildProgressHistoryQuery("")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT client_side_id, quest_id, percent, note, updated_at FROM progress_updates ORDER BY updated_at DESC",
		query,
	)
	assert.Empty(t, args)
}

func TestBuildProgressHistoryQuery_SingleQuest(t *testing.T) {
	query, args, err := buildProgressHistoryQuery("q-42")

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE quest_id = ?")
	assert.Equal(t, []any{"q-42"}, args)
}
