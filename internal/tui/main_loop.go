package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neurox/neurox2-client/internal/service"
	"github.com/neurox/neurox2-client/models"
)

type screen int

const (
	screenDashboard screen = iota
	screenMood
	screenQuests
	screenForum
	screenAlly
	screenBurnout
	screenReminders
)

type reminderAddStage int

const (
	reminderAddNone reminderAddStage = iota
	reminderAddKind
	reminderAddFields
)

const moodHistoryLimit = 14

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	fired    <-chan models.Reminder

	screen  screen
	loading bool
	status  string
	errMsg  string
	banner  string

	moodHistory []models.MoodEntry
	moodEditing bool
	moodInputs  []textinput.Model
	moodNote    textarea.Model
	moodFocus   int
	moodSaving  bool
	moodErr     string

	burnout        models.BurnoutResult
	burnoutChecked bool

	ally       models.MentalAllyData
	allyLoaded bool
	allyIdx    int

	quests          []models.TaskQuest
	questIdx        int
	progressEditing bool
	progressInputs  []textinput.Model
	progressFocus   int
	progressSaving  bool
	progressErr     string
	progressViewing bool
	progressQuestID string
	progressHistory []models.ProgressUpdate

	posts    []models.ForumPost
	topics   []string
	topicIdx int

	reminders   []models.Reminder
	reminderIdx int
	remAddStage reminderAddStage
	remKindIdx  int
	remInputs   []textinput.Model
	remFocus    int
	remSaving   bool
	remErr      string
}

var reminderKindOptions = []string{
	models.ReminderHydration,
	models.ReminderBreak,
	models.ReminderExercise,
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, fired <-chan models.Reminder) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		fired:    fired,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.cmdLoadMoodHistory(),
		m.cmdCheckBurnout(),
		m.cmdLoadQuests(),
	}
	if m.fired != nil {
		cmds = append(cmds, m.cmdWaitReminder())
	}
	return tea.Batch(cmds...)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case moodHistoryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.moodHistory = msg.entries
		return m, nil

	case moodSavedMsg:
		m.moodSaving = false
		if msg.err != nil {
			m.moodErr = humanizeServiceError(msg.err)
			return m, nil
		}
		m.moodEditing = false
		m.moodErr = ""
		m.status = "Настроение записано!"
		return m, m.cmdLoadMoodHistory()

	case burnoutCheckedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.burnout = msg.result
		m.burnoutChecked = true
		return m, nil

	case allyLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.ally = msg.ally
		m.allyLoaded = true
		m.allyIdx = 0
		m.errMsg = ""
		return m, nil

	case questsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.quests = msg.quests.Quests
		if m.questIdx >= len(m.quests) {
			m.questIdx = 0
			// квест под курсором пропал из списка — открытую форму прогресса
			// больше не к чему привязать
			if m.progressEditing {
				m.progressEditing = false
				m.progressErr = ""
				m.errMsg = "квест больше недоступен"
			}
		}
		return m, nil

	case progressSavedMsg:
		m.progressSaving = false
		if msg.err != nil {
			m.progressErr = humanizeServiceError(msg.err)
			return m, nil
		}
		m.progressEditing = false
		m.progressErr = ""
		m.status = fmt.Sprintf("Прогресс %d%% записан!", msg.update.Percent)
		return m, m.cmdLoadQuests()

	case progressHistoryLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.progressViewing = true
		m.progressQuestID = msg.questID
		m.progressHistory = msg.updates
		return m, nil

	case postsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.posts = msg.posts
		m.topics = distinctTopics(msg.posts)
		m.topicIdx = 0
		m.errMsg = ""
		return m, nil

	case remindersLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.reminders = msg.reminders
		if m.reminderIdx >= len(m.reminders) {
			m.reminderIdx = 0
		}
		return m, nil

	case reminderSavedMsg:
		m.remSaving = false
		if msg.err != nil {
			m.remErr = msg.err.Error()
			return m, nil
		}
		m.resetReminderAdd()
		m.status = "Напоминание добавлено!"
		return m, m.cmdLoadReminders()

	case reminderToggledMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, m.cmdLoadReminders()

	case reminderDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Напоминание удалено"
		return m, m.cmdLoadReminders()

	case reminderFiredMsg:
		m.banner = fmt.Sprintf("Напоминание (%s): %s", reminderKindLabel(msg.reminder.Kind), msg.reminder.Message)
		cmds := []tea.Cmd{m.cmdWaitReminder()}
		if m.screen == screenReminders {
			cmds = append(cmds, m.cmdLoadReminders())
		}
		return m, tea.Batch(cmds...)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActiveForm(msg)
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.moodEditing {
		return m.updateMoodForm(msg)
	}
	if m.progressEditing {
		return m.updateProgressForm(msg)
	}
	if m.remAddStage != reminderAddNone {
		return m.updateReminderAdd(msg)
	}

	return m.updateNavigation(keyMsg)
}

// updateActiveForm routes non-key messages (cursor blinks) to whichever
// input currently owns focus.
func (m mainLoopModel) updateActiveForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.moodEditing:
		return m.updateMoodForm(msg)
	case m.progressEditing:
		return m.updateProgressForm(msg)
	case m.remAddStage == reminderAddFields:
		return m.updateReminderAdd(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateNavigation(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.progressViewing {
		if key.Matches(keyMsg, keys.esc) {
			m.progressViewing = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDashboard
		m.status = ""
		m.errMsg = ""
		return m, nil

	case key.Matches(keyMsg, keys.mood):
		m.screen = screenMood
		return m, m.cmdLoadMoodHistory()

	case key.Matches(keyMsg, keys.quests):
		m.screen = screenQuests
		return m, m.cmdLoadQuests()

	case key.Matches(keyMsg, keys.forum):
		m.screen = screenForum
		return m, m.cmdLoadPosts()

	case key.Matches(keyMsg, keys.ally):
		m.screen = screenAlly
		return m, m.cmdLoadAlly()

	case key.Matches(keyMsg, keys.burnout):
		m.screen = screenBurnout
		return m, m.cmdCheckBurnout()

	case key.Matches(keyMsg, keys.reminders):
		m.screen = screenReminders
		return m, m.cmdLoadReminders()
	}

	switch m.screen {
	case screenMood:
		if key.Matches(keyMsg, keys.newItem) {
			m.startMoodForm()
			return m, textinput.Blink
		}

	case screenQuests:
		return m.updateQuestsScreen(keyMsg)

	case screenForum:
		if key.Matches(keyMsg, keys.topic) && len(m.topics) > 0 {
			// 0 — все темы, дальше по кругу
			m.topicIdx = (m.topicIdx + 1) % (len(m.topics) + 1)
			return m, nil
		}
		if key.Matches(keyMsg, keys.refresh) {
			return m, m.cmdLoadPosts()
		}

	case screenAlly:
		return m.updateAllyScreen(keyMsg)

	case screenBurnout:
		if key.Matches(keyMsg, keys.refresh) {
			m.burnoutChecked = false
			return m, m.cmdCheckBurnout()
		}

	case screenReminders:
		return m.updateRemindersScreen(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updateQuestsScreen(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.questIdx > 0 {
			m.questIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.questIdx < len(m.quests)-1 {
			m.questIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.quests) == 0 {
			m.status = "Квестов нет"
			return m, nil
		}
		m.startProgressForm()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.history):
		if len(m.quests) == 0 {
			m.status = "Квестов нет"
			return m, nil
		}
		return m, m.cmdLoadProgressHistory(m.quests[m.questIdx].ID)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadQuests()
	}
	return m, nil
}

func (m mainLoopModel) updateAllyScreen(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.allyIdx > 0 {
			m.allyIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.allyIdx < len(m.ally.Suggestions)-1 {
			m.allyIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		if m.allyIdx >= len(m.ally.Suggestions) {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(m.ally.Suggestions[m.allyIdx].Message); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadAlly()
	}
	return m, nil
}

func (m mainLoopModel) updateRemindersScreen(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.reminderIdx > 0 {
			m.reminderIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.reminderIdx < len(m.reminders)-1 {
			m.reminderIdx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.startReminderAdd()
		return m, nil
	case key.Matches(keyMsg, keys.toggle):
		if len(m.reminders) == 0 {
			return m, nil
		}
		reminder := m.reminders[m.reminderIdx]
		return m, m.cmdToggleReminder(reminder.ClientSideID, !reminder.Enabled)
	case key.Matches(keyMsg, keys.delete):
		if len(m.reminders) == 0 {
			return m, nil
		}
		return m, m.cmdDeleteReminder(m.reminders[m.reminderIdx].ClientSideID)
	}
	return m, nil
}

// ── Форма настроения ─────────────────────────────────────────────────────────

func (m *mainLoopModel) startMoodForm() {
	mood := textinput.New()
	mood.Placeholder = "Настроение (calm, stressed, energized...)"
	mood.Width = 40
	mood.Focus()

	emoji := textinput.New()
	emoji.Placeholder = "Эмодзи (можно пусто)"
	emoji.Width = 40

	note := textarea.New()
	note.Placeholder = "Заметка (опционально)"
	note.SetWidth(54)
	note.SetHeight(4)

	m.moodInputs = []textinput.Model{mood, emoji}
	m.moodNote = note
	m.moodFocus = 0
	m.moodErr = ""
	m.moodSaving = false
	m.moodEditing = true
}

func (m mainLoopModel) updateMoodForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.moodEditing = false
			m.moodErr = ""
			return m, nil
		case "tab":
			m.moodBlurFocused()
			m.moodFocus = (m.moodFocus + 1) % 3
			m.moodFocusCurrent()
			return m, nil
		case "shift+tab":
			m.moodBlurFocused()
			m.moodFocus = (m.moodFocus + 2) % 3
			m.moodFocusCurrent()
			return m, nil
		case "ctrl+s":
			if m.moodSaving {
				return m, nil
			}
			mood := strings.TrimSpace(m.moodInputs[0].Value())
			if mood == "" {
				m.moodErr = "нужно указать настроение"
				return m, nil
			}
			entry := models.MoodEntry{
				Mood:  mood,
				Emoji: strings.TrimSpace(m.moodInputs[1].Value()),
				Note:  strings.TrimSpace(m.moodNote.Value()),
			}
			m.moodErr = ""
			m.moodSaving = true
			return m, m.cmdTrackMood(entry)
		}
	}

	var cmd tea.Cmd
	if m.moodFocus == 2 {
		m.moodNote, cmd = m.moodNote.Update(msg)
	} else {
		m.moodInputs[m.moodFocus], cmd = m.moodInputs[m.moodFocus].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) moodBlurFocused() {
	if m.moodFocus == 2 {
		m.moodNote.Blur()
		return
	}
	m.moodInputs[m.moodFocus].Blur()
}

func (m *mainLoopModel) moodFocusCurrent() {
	if m.moodFocus == 2 {
		m.moodNote.Focus()
		return
	}
	m.moodInputs[m.moodFocus].Focus()
}

// ── Форма прогресса ──────────────────────────────────────────────────────────

func (m *mainLoopModel) startProgressForm() {
	percent := textinput.New()
	percent.Placeholder = "Процент (0-100)"
	percent.Width = 40
	percent.CharLimit = 3
	percent.Focus()

	note := textinput.New()
	note.Placeholder = "Заметка (можно пусто)"
	note.Width = 40

	m.progressInputs = []textinput.Model{percent, note}
	m.progressFocus = 0
	m.progressErr = ""
	m.progressSaving = false
	m.progressEditing = true
}

func (m mainLoopModel) updateProgressForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.progressEditing = false
			m.progressErr = ""
			return m, nil
		case "tab", "shift+tab":
			m.progressInputs[m.progressFocus].Blur()
			m.progressFocus = (m.progressFocus + 1) % len(m.progressInputs)
			m.progressInputs[m.progressFocus].Focus()
			return m, nil
		case "enter":
			if m.progressSaving {
				return m, nil
			}
			if m.questIdx >= len(m.quests) {
				m.progressEditing = false
				m.errMsg = "квест больше недоступен"
				return m, nil
			}
			raw := strings.TrimSpace(m.progressInputs[0].Value())
			percent, err := strconv.Atoi(raw)
			if err != nil || percent < 0 || percent > 100 {
				m.progressErr = "процент должен быть числом от 0 до 100"
				return m, nil
			}
			update := models.ProgressUpdate{
				QuestID: m.quests[m.questIdx].ID,
				Percent: percent,
				Note:    strings.TrimSpace(m.progressInputs[1].Value()),
			}
			m.progressErr = ""
			m.progressSaving = true
			return m, m.cmdTrackProgress(update)
		}
	}

	var cmd tea.Cmd
	m.progressInputs[m.progressFocus], cmd = m.progressInputs[m.progressFocus].Update(msg)
	return m, cmd
}

// ── Добавление напоминания ───────────────────────────────────────────────────

func (m *mainLoopModel) startReminderAdd() {
	m.remAddStage = reminderAddKind
	m.remKindIdx = 0
	m.remErr = ""
	m.remSaving = false
}

func (m *mainLoopModel) resetReminderAdd() {
	m.remAddStage = reminderAddNone
	m.remKindIdx = 0
	m.remInputs = nil
	m.remFocus = 0
	m.remErr = ""
	m.remSaving = false
}

func (m mainLoopModel) updateReminderAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.remAddStage {
	case reminderAddKind:
		return m.updateReminderAddKind(msg)
	case reminderAddFields:
		return m.updateReminderAddFields(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateReminderAddKind(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.resetReminderAdd()
		return m, nil
	case "up", "k":
		if m.remKindIdx > 0 {
			m.remKindIdx--
		}
	case "down", "j":
		if m.remKindIdx < len(reminderKindOptions)-1 {
			m.remKindIdx++
		}
	case "1", "2", "3":
		m.remKindIdx = int(keyMsg.String()[0] - '1')
		m.selectReminderKind()
		return m, textinput.Blink
	case "enter":
		m.selectReminderKind()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *mainLoopModel) selectReminderKind() {
	message := textinput.New()
	message.Placeholder = "Текст напоминания"
	message.Width = 40
	message.Focus()

	interval := textinput.New()
	interval.Placeholder = "Интервал (например 45m или 2h)"
	interval.Width = 40

	m.remInputs = []textinput.Model{message, interval}
	m.remFocus = 0
	m.remErr = ""
	m.remAddStage = reminderAddFields
}

func (m mainLoopModel) updateReminderAddFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetReminderAdd()
			return m, nil
		case "tab", "shift+tab":
			m.remInputs[m.remFocus].Blur()
			m.remFocus = (m.remFocus + 1) % len(m.remInputs)
			m.remInputs[m.remFocus].Focus()
			return m, nil
		case "enter":
			if m.remSaving {
				return m, nil
			}
			message := strings.TrimSpace(m.remInputs[0].Value())
			if message == "" {
				m.remErr = "нужен текст напоминания"
				return m, nil
			}
			interval, err := time.ParseDuration(strings.TrimSpace(m.remInputs[1].Value()))
			if err != nil || interval <= 0 {
				m.remErr = "интервал должен быть положительным, например 45m"
				return m, nil
			}
			reminder := models.Reminder{
				Kind:     reminderKindOptions[m.remKindIdx],
				Message:  message,
				Interval: interval,
				Enabled:  true,
			}
			m.remErr = ""
			m.remSaving = true
			return m, m.cmdScheduleReminder(reminder)
		}
	}

	var cmd tea.Cmd
	m.remInputs[m.remFocus], cmd = m.remInputs[m.remFocus].Update(msg)
	return m, cmd
}

// ── Команды ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadMoodHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckinService

	return func() tea.Msg {
		entries, err := svc.MoodHistory(ctx, models.MoodFilter{Limit: moodHistoryLimit})
		return moodHistoryLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdTrackMood(entry models.MoodEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckinService

	return func() tea.Msg {
		saved, err := svc.TrackMood(ctx, entry)
		return moodSavedMsg{entry: saved, err: err}
	}
}

func (m mainLoopModel) cmdCheckBurnout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckinService

	return func() tea.Msg {
		result, err := svc.CheckBurnout(ctx)
		return burnoutCheckedMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadAlly() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckinService

	return func() tea.Msg {
		ally, err := svc.FetchAlly(ctx)
		return allyLoadedMsg{ally: ally, err: err}
	}
}

func (m mainLoopModel) cmdLoadQuests() tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuestService

	return func() tea.Msg {
		quests, err := svc.Quests(ctx)
		return questsLoadedMsg{quests: quests, err: err}
	}
}

func (m mainLoopModel) cmdTrackProgress(update models.ProgressUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuestService

	return func() tea.Msg {
		saved, err := svc.TrackProgress(ctx, update)
		return progressSavedMsg{update: saved, err: err}
	}
}

func (m mainLoopModel) cmdLoadProgressHistory(questID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuestService

	return func() tea.Msg {
		updates, err := svc.ProgressHistory(ctx, questID)
		return progressHistoryLoadedMsg{questID: questID, updates: updates, err: err}
	}
}

func (m mainLoopModel) cmdLoadPosts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ForumService

	return func() tea.Msg {
		posts, err := svc.Posts(ctx)
		return postsLoadedMsg{posts: posts, err: err}
	}
}

func (m mainLoopModel) cmdLoadReminders() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReminderService

	return func() tea.Msg {
		reminders, err := svc.Reminders(ctx)
		return remindersLoadedMsg{reminders: reminders, err: err}
	}
}

func (m mainLoopModel) cmdScheduleReminder(reminder models.Reminder) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReminderService

	return func() tea.Msg {
		_, err := svc.Schedule(ctx, reminder)
		return reminderSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleReminder(clientSideID string, enabled bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReminderService

	return func() tea.Msg {
		err := svc.SetEnabled(ctx, clientSideID, enabled)
		return reminderToggledMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteReminder(clientSideID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReminderService

	return func() tea.Msg {
		err := svc.Delete(ctx, clientSideID)
		return reminderDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdWaitReminder() tea.Cmd {
	fired := m.fired

	return func() tea.Msg {
		reminder, ok := <-fired
		if !ok {
			return nil
		}
		return reminderFiredMsg{reminder: reminder}
	}
}

func distinctTopics(posts []models.ForumPost) []string {
	seen := make(map[string]struct{}, len(posts))
	topics := make([]string, 0, len(posts))
	for _, post := range posts {
		if post.Topic == "" {
			continue
		}
		if _, ok := seen[post.Topic]; ok {
			continue
		}
		seen[post.Topic] = struct{}{}
		topics = append(topics, post.Topic)
	}
	return topics
}

func reminderKindLabel(kind string) string {
	switch kind {
	case models.ReminderHydration:
		return "Вода"
	case models.ReminderBreak:
		return "Перерыв"
	case models.ReminderExercise:
		return "Разминка"
	}
	return kind
}
