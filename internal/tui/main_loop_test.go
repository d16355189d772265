// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/neurox/neurox2-client/models"
)

// ── Форма прогресса при обновлении списка квестов ────────────────────────────

func questsModel(quests ...models.TaskQuest) mainLoopModel {
	m := newMainLoopModel(context.Background(), nil, nil)
	m.screen = screenQuests
	m.loading = false
	m.quests = quests
	return m
}

func TestMainLoop_QuestsReload_EmptyListClosesProgressForm(t *testing.T) {
	m := questsModel(models.TaskQuest{ID: "q-1", Title: "Вода"})
	m.startProgressForm()
	require.True(t, m.progressEditing)

	// пока форма открыта, приходит обновление с пустым списком квестов
	updated, _ := m.Update(questsLoadedMsg{quests: models.QuestList{}})
	got, ok := updated.(mainLoopModel)
	require.True(t, ok)

	require.False(t, got.progressEditing)
	require.Zero(t, got.questIdx)
	require.NotEmpty(t, got.errMsg)

	// View после такого обновления не должен паниковать
	require.NotPanics(t, func() { _ = got.View() })
}

func TestMainLoop_QuestsReload_ShorterListKeepsFormOnValidCursor(t *testing.T) {
	m := questsModel(
		models.TaskQuest{ID: "q-1", Title: "Вода"},
		models.TaskQuest{ID: "q-2", Title: "Разминка"},
	)
	m.startProgressForm()

	// курсор остаётся в границах нового списка, форма живёт дальше
	updated, _ := m.Update(questsLoadedMsg{quests: models.QuestList{
		Quests: []models.TaskQuest{{ID: "q-1", Title: "Вода"}},
	}})
	got := updated.(mainLoopModel)

	require.True(t, got.progressEditing)
	require.NotPanics(t, func() { _ = got.View() })
}

func TestMainLoop_ProgressForm_EnterAfterQuestGone(t *testing.T) {
	m := questsModel(models.TaskQuest{ID: "q-1", Title: "Вода"})
	m.startProgressForm()
	m.quests = nil

	updated, cmd := m.updateProgressForm(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(mainLoopModel)

	require.Nil(t, cmd)
	require.False(t, got.progressEditing)
	require.NotEmpty(t, got.errMsg)
}

func TestMainLoop_ViewProgressForm_CursorOutOfRange(t *testing.T) {
	m := questsModel()
	m.progressEditing = true
	m.questIdx = 0

	require.NotPanics(t, func() {
		out := m.viewProgressForm()
		require.Contains(t, out, "Квест больше недоступен")
	})
}
