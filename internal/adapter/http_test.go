// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/neurox/neurox2-client/internal/config"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpWellnessAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpWellnessAdapter {
	t.Helper()
	adapterCfg := config.Adapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPWellnessAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpWellnessAdapter)
}

// ── NewHTTPWellnessAdapter ───────────────────────────────────────────────────

func TestNewHTTPWellnessAdapter_NormalizesBareHostPort(t *testing.T) {
	a, err := NewHTTPWellnessAdapter(config.Adapter{ServerURL: "localhost:8080"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpWellnessAdapter).client.BaseURL)
}

func TestNewHTTPWellnessAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPWellnessAdapter(config.Adapter{ServerURL: "   "}, logger.Nop())

	require.Error(t, err)
}

// ── FetchMentalAllyData ──────────────────────────────────────────────────────

func TestFetchMentalAllyData_Success(t *testing.T) {
	want := models.MentalAllyData{
		Greeting: "Привет! Как прошёл твой день?",
		Suggestions: []models.AllySuggestion{
			{Topic: "sleep", Message: "Сегодня стоит лечь спать пораньше"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/mental-ally", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchMentalAllyData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── FetchTaskQuests ──────────────────────────────────────────────────────────

func TestFetchTaskQuests_Success(t *testing.T) {
	want := models.QuestList{
		Quests: []models.TaskQuest{
			{ID: "q-1", Title: "Прогулка 20 минут", XP: 50},
			{ID: "q-2", Title: "Стакан воды утром", XP: 10, Completed: true},
		},
		Length: 2,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/task-quests", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchTaskQuests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Сервер вернул 500 с текстовым телом: должен прийти HTTPError со статусом,
// а не ошибка декодирования.
func TestFetchTaskQuests_InternalServerError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchTaskQuests(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrDecode)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Error", httpErr.Body)
}

// ── CheckBurnout ─────────────────────────────────────────────────────────────

func TestCheckBurnout_Success(t *testing.T) {
	want := models.BurnoutResult{
		Level:    72,
		Risk:     models.BurnoutRiskHigh,
		Symptoms: []string{"усталость", "раздражительность"},
		Advice:   "Возьмите выходной",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/burnout", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CheckBurnout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckBurnout_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckBurnout(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

// ── TrackMood ────────────────────────────────────────────────────────────────

func TestTrackMood_Success(t *testing.T) {
	entry := models.MoodEntry{Mood: "calm"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mood-tracking", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)

		var got models.MoodEntry
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, entry, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.TrackMood(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, models.TrackAck{Status: "ok"}, ack)
}

func TestTrackMood_RequestBodyRoundTrip(t *testing.T) {
	entry := models.MoodEntry{
		ClientSideID: "0190c3a4-0000-7000-8000-000000000001",
		Mood:         "stressed",
		Emoji:        "😣",
		Note:         "дедлайн горит",
		RecordedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got models.MoodEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, entry, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.TrackMood(context.Background(), entry)

	require.NoError(t, err)
}

func TestTrackMood_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("mood is required"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.TrackMood(context.Background(), models.MoodEntry{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── FetchForumPosts ──────────────────────────────────────────────────────────

func TestFetchForumPosts_Success(t *testing.T) {
	want := models.ForumPostList{
		Posts: []models.ForumPost{
			{ID: "p-1", Topic: "burnout", Author: "anna", Title: "Как вы отдыхаете?"},
		},
		Length: 1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/forum-posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchForumPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── TrackProgress ────────────────────────────────────────────────────────────

func TestTrackProgress_Success(t *testing.T) {
	update := models.ProgressUpdate{QuestID: "q-1", Percent: 40, Note: "половина маршрута"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/progress-tracking", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.ProgressUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, update, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.TrackProgress(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "ok", ack.Status)
}

func TestTrackProgress_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("unknown quest"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.TrackProgress(context.Background(), models.ProgressUpdate{QuestID: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── FetchIntegratedFeatures ──────────────────────────────────────────────────

func TestFetchIntegratedFeatures_Success(t *testing.T) {
	want := models.IntegratedFeatureSet{
		Features: []models.IntegratedFeature{
			{Name: "mood-trends", Enabled: true},
			{Name: "forum", Enabled: false},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/integrated-features", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchIntegratedFeatures(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"mood-trends"}, got.Enabled())
}

// ── Транспортные ошибки ──────────────────────────────────────────────────────

func TestFetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже закрыт: communication refused

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchTaskQuests(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckBurnout(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// Два параллельных запроса независимы: падение одного не влияет на другой.
func TestFetch_ConcurrentCallsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/task-quests":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"quests":[{"id":"q-1","title":"Прогулка"}],"length":1}`))
		case "/api/burnout":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Internal Error"))
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	var (
		wg          sync.WaitGroup
		quests      models.QuestList
		questsErr   error
		burnoutErr  error
		burnoutData models.BurnoutResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		quests, questsErr = a.FetchTaskQuests(context.Background())
	}()
	go func() {
		defer wg.Done()
		burnoutData, burnoutErr = a.CheckBurnout(context.Background())
	}()
	wg.Wait()

	require.NoError(t, questsErr)
	assert.Len(t, quests.Quests, 1)

	require.Error(t, burnoutErr)
	assert.ErrorIs(t, burnoutErr, ErrInternalServerError)
	assert.Zero(t, burnoutData)
}

// ── HTTPError ────────────────────────────────────────────────────────────────

func TestHTTPError_UnknownStatusHasNoSentinel(t *testing.T) {
	err := &HTTPError{Status: http.StatusTeapot, Body: "teapot"}

	assert.EqualError(t, err, "http 418: teapot")
	assert.Nil(t, errors.Unwrap(err))
}

func TestHTTPError_EmptyBodyUsesStatusText(t *testing.T) {
	err := &HTTPError{Status: http.StatusBadGateway}

	assert.EqualError(t, err, "http 502: Bad Gateway")
	assert.ErrorIs(t, err, ErrBadGateway)
}
