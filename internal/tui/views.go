package tui

import (
	"fmt"
	"strings"

	"github.com/neurox/neurox2-client/models"
)

func (m mainLoopModel) View() string {
	if m.moodEditing {
		return m.viewMoodForm()
	}
	if m.progressEditing {
		return m.viewProgressForm()
	}
	if m.progressViewing {
		return m.viewProgressHistory()
	}

	switch m.remAddStage {
	case reminderAddKind:
		return m.viewReminderKind()
	case reminderAddFields:
		return m.viewReminderFields()
	}

	switch m.screen {
	case screenMood:
		return m.viewMood()
	case screenQuests:
		return m.viewQuests()
	case screenForum:
		return m.viewForum()
	case screenAlly:
		return m.viewAlly()
	case screenBurnout:
		return m.viewBurnout()
	case screenReminders:
		return m.viewReminders()
	}

	return m.viewDashboard()
}

// statusBlock renders the shared banner/status/error lines shown at the top
// of every screen.
func (m mainLoopModel) statusBlock() string {
	out := ""
	if m.banner != "" {
		out += bannerStyle.Render("⏰ "+m.banner) + "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}

func (m mainLoopModel) viewDashboard() string {
	out := m.statusBlock()

	if m.loading {
		out += "Загрузка...\n"
		return renderPage("NEUROX2: ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), dashboardHotKeys)
	}

	out += "Настроение : " + m.lastMoodLine() + "\n"
	out += "Выгорание  : " + m.burnoutSummaryLine() + "\n"
	out += "Квесты     : " + m.questsSummaryLine() + "\n"

	return renderPage("NEUROX2: ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), dashboardHotKeys)
}

const dashboardHotKeys = "m: настроение │ q: квесты │ f: форум │ a: союзник │ b: выгорание │ r: напоминания"

func (m mainLoopModel) lastMoodLine() string {
	if len(m.moodHistory) == 0 {
		return "ещё не отмечалось"
	}
	last := m.moodHistory[0]
	line := last.Mood
	if last.Emoji != "" {
		line += " " + last.Emoji
	}
	return line + " (" + formatMoment(last.RecordedAt) + ")"
}

func (m mainLoopModel) burnoutSummaryLine() string {
	if !m.burnoutChecked {
		return "нет данных"
	}
	return fmt.Sprintf("%d/100 (%s)", m.burnout.Level, burnoutRiskLabel(m.burnout.Risk))
}

func (m mainLoopModel) questsSummaryLine() string {
	if len(m.quests) == 0 {
		return "нет активных"
	}
	completed := 0
	for _, q := range m.quests {
		if q.Completed {
			completed++
		}
	}
	return fmt.Sprintf("%d всего, %d выполнено", len(m.quests), completed)
}

// ── Настроение ───────────────────────────────────────────────────────────────

func (m mainLoopModel) viewMood() string {
	out := m.statusBlock()

	if len(m.moodHistory) == 0 {
		out += "Записей нет\n"
	} else {
		out += "Когда            │ Настроение   │ Заметка\n"
		out += "─────────────────┼──────────────┼───────────────────────\n"
		for _, entry := range m.moodHistory {
			mood := entry.Mood
			if entry.Emoji != "" {
				mood += " " + entry.Emoji
			}
			out += fmt.Sprintf(
				"%-16s │ %-12s │ %s\n",
				formatMoment(entry.RecordedAt),
				fitText(mood, 12),
				fitText(valueOrDash(entry.Note), 23),
			)
		}
	}

	return renderPage("ДНЕВНИК НАСТРОЕНИЯ", strings.TrimRight(out, "\n"), "n: новая запись │ esc: назад")
}

func (m mainLoopModel) viewMoodForm() string {
	out := "Настроение : [ " + m.moodInputs[0].View() + " ]\n"
	out += "Эмодзи     : [ " + m.moodInputs[1].View() + " ]\n"
	out += "Заметка:\n"
	out += m.moodNote.View() + "\n"
	if m.moodSaving {
		out += "\nСохранение...\n"
	}
	if m.moodErr != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.moodErr) + "\n"
	}

	return renderPage("КАК ВЫ СЕБЯ ЧУВСТВУЕТЕ?", strings.TrimRight(out, "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}

// ── Квесты ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) viewQuests() string {
	out := m.statusBlock()

	if len(m.quests) == 0 {
		out += "Квестов нет\n"
	} else {
		out += "     │ Квест                        │ XP   │ Статус\n"
		out += "─────┼──────────────────────────────┼──────┼──────────\n"
		for i, quest := range m.quests {
			cursor := " "
			if i == m.questIdx {
				cursor = ">"
			}
			status := "активен"
			if quest.Completed {
				status = "выполнен"
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-28s │ %-4d │ %s\n",
				cursor,
				i+1,
				fitText(quest.Title, 28),
				quest.XP,
				status,
			)
		}
	}

	return renderPage(
		"ВЕЛНЕС-КВЕСТЫ",
		strings.TrimRight(out, "\n"),
		"enter: отметить прогресс │ h: история │ u: обновить │ ↑/↓: нав. │ esc: назад",
	)
}

func (m mainLoopModel) viewProgressForm() string {
	if m.questIdx >= len(m.quests) {
		return renderPage("ПРОГРЕСС ПО КВЕСТУ", "Квест больше недоступен.", "esc: назад")
	}
	quest := m.quests[m.questIdx]

	out := "Квест     : " + quest.Title + "\n"
	if quest.Description != "" {
		out += "Описание  : " + fitText(quest.Description, 50) + "\n"
	}
	out += "\n"
	out += "Процент   : [ " + m.progressInputs[0].View() + " ]\n"
	out += "Заметка   : [ " + m.progressInputs[1].View() + " ]\n"
	if m.progressSaving {
		out += "\nСохранение...\n"
	}
	if m.progressErr != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.progressErr) + "\n"
	}

	return renderPage("ПРОГРЕСС ПО КВЕСТУ", strings.TrimRight(out, "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewProgressHistory() string {
	out := ""
	if len(m.progressHistory) == 0 {
		out += "Отметок прогресса нет\n"
	} else {
		out += "Когда            │ Процент │ Заметка\n"
		out += "─────────────────┼─────────┼───────────────────────\n"
		for _, update := range m.progressHistory {
			out += fmt.Sprintf(
				"%-16s │ %6d%% │ %s\n",
				formatMoment(update.UpdatedAt),
				update.Percent,
				fitText(valueOrDash(update.Note), 23),
			)
		}
	}

	return renderPage("ИСТОРИЯ ПРОГРЕССА", strings.TrimRight(out, "\n"), "esc: назад")
}

// ── Форум ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) viewForum() string {
	out := m.statusBlock()

	topic := ""
	if m.topicIdx > 0 && m.topicIdx <= len(m.topics) {
		topic = m.topics[m.topicIdx-1]
	}

	if topic == "" {
		out += "Тема: все\n\n"
	} else {
		out += "Тема: " + topic + "\n\n"
	}

	shown := 0
	for _, post := range m.posts {
		if topic != "" && post.Topic != topic {
			continue
		}
		shown++
		out += fmt.Sprintf(
			"[%s] %s — %s\n",
			valueOrDash(post.Topic),
			fitText(post.Title, 40),
			post.Author,
		)
		if post.Body != "" {
			out += "    " + fitText(post.Body, 60) + "\n"
		}
	}
	if shown == 0 {
		out += "Постов нет\n"
	}

	return renderPage("ФОРУМ ПОДДЕРЖКИ", strings.TrimRight(out, "\n"), "t: сменить тему │ u: обновить │ esc: назад")
}

// ── Ментальный союзник ───────────────────────────────────────────────────────

func (m mainLoopModel) viewAlly() string {
	out := m.statusBlock()

	if !m.allyLoaded {
		out += "Загрузка...\n"
		return renderPage("МЕНТАЛЬНЫЙ СОЮЗНИК", strings.TrimRight(out, "\n"), "esc: назад")
	}

	if m.ally.Greeting != "" {
		out += m.ally.Greeting + "\n\n"
	}

	if len(m.ally.Suggestions) == 0 {
		out += "Советов пока нет\n"
	} else {
		for i, suggestion := range m.ally.Suggestions {
			cursor := " "
			if i == m.allyIdx {
				cursor = ">"
			}
			line := suggestion.Message
			if suggestion.Topic != "" {
				line = "[" + suggestion.Topic + "] " + line
			}
			out += fmt.Sprintf("%s %s\n", cursor, fitText(line, 60))
		}
	}

	return renderPage("МЕНТАЛЬНЫЙ СОЮЗНИК", strings.TrimRight(out, "\n"), "c: скопировать совет │ u: обновить │ ↑/↓: нав. │ esc: назад")
}

// ── Выгорание ────────────────────────────────────────────────────────────────

func (m mainLoopModel) viewBurnout() string {
	out := m.statusBlock()

	if !m.burnoutChecked {
		out += "Проверка...\n"
		return renderPage("ПРОВЕРКА ВЫГОРАНИЯ", strings.TrimRight(out, "\n"), "esc: назад")
	}

	out += fmt.Sprintf("Уровень : %d/100\n", m.burnout.Level)
	out += "Риск    : " + burnoutRiskLabel(m.burnout.Risk) + "\n"
	if len(m.burnout.Symptoms) > 0 {
		out += "Симптомы: " + strings.Join(m.burnout.Symptoms, ", ") + "\n"
	}
	if m.burnout.Advice != "" {
		out += "\nСовет: " + m.burnout.Advice + "\n"
	}
	if !m.burnout.CheckedAt.IsZero() {
		out += "\nПроверено: " + formatMoment(m.burnout.CheckedAt) + "\n"
	}

	return renderPage("ПРОВЕРКА ВЫГОРАНИЯ", strings.TrimRight(out, "\n"), "u: проверить снова │ esc: назад")
}

// ── Напоминания ──────────────────────────────────────────────────────────────

func (m mainLoopModel) viewReminders() string {
	out := m.statusBlock()

	if len(m.reminders) == 0 {
		out += "Напоминаний нет\n"
	} else {
		out += "     │ Тип       │ Интервал │ Вкл │ Текст\n"
		out += "─────┼───────────┼──────────┼─────┼──────────────────────\n"
		for i, reminder := range m.reminders {
			cursor := " "
			if i == m.reminderIdx {
				cursor = ">"
			}
			enabled := " + "
			if !reminder.Enabled {
				enabled = " - "
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-9s │ %-8s │ %s │ %s\n",
				cursor,
				i+1,
				fitText(reminderKindLabel(reminder.Kind), 9),
				reminder.Interval,
				enabled,
				fitText(reminder.Message, 22),
			)
		}
	}

	return renderPage(
		"НАПОМИНАНИЯ О ЗДОРОВЬЕ",
		strings.TrimRight(out, "\n"),
		"n: добавить │ t: вкл/выкл │ ctrl+d: удалить │ ↑/↓: нав. │ esc: назад",
	)
}

func (m mainLoopModel) viewReminderKind() string {
	out := ""
	for i, kind := range reminderKindOptions {
		cursor := " "
		if i == m.remKindIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, reminderKindLabel(kind))
	}

	return renderPage("НОВОЕ НАПОМИНАНИЕ: ТИП", strings.TrimRight(out, "\n"), "1-3/enter: выбрать │ ↑/↓: навигация │ esc: отмена")
}

func (m mainLoopModel) viewReminderFields() string {
	out := "Тип       : " + reminderKindLabel(reminderKindOptions[m.remKindIdx]) + "\n"
	out += "Текст     : [ " + m.remInputs[0].View() + " ]\n"
	out += "Интервал  : [ " + m.remInputs[1].View() + " ]\n"
	if m.remSaving {
		out += "\nСохранение...\n"
	}
	if m.remErr != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.remErr) + "\n"
	}

	return renderPage("НОВОЕ НАПОМИНАНИЕ", strings.TrimRight(out, "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func burnoutRiskLabel(risk string) string {
	switch risk {
	case models.BurnoutRiskLow:
		return "низкий"
	case models.BurnoutRiskModerate:
		return "умеренный"
	case models.BurnoutRiskHigh:
		return "высокий"
	}
	return valueOrDash(risk)
}
