// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the NeuroX2 wellness server.
//
// The primary abstraction is [WellnessAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPWellnessAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrInternalServerError] for 500, [ErrNotFound] for
// 404). The status code is always inspected before the body is decoded:
// a non-2xx response surfaces as [*HTTPError], never as a decode failure.
package adapter

import (
	"context"

	"github.com/neurox/neurox2-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wellness_adapter_mock.go -package=mock

// WellnessAdapter defines transport-agnostic communication with the NeuroX2
// wellness server. Implementations are responsible for request construction,
// JSON serialisation, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every method performs exactly one HTTP exchange and returns a fresh value
// owned by the caller; implementations never cache or mutate response data.
type WellnessAdapter interface {
	// FetchMentalAllyData retrieves the mental ally greeting and the current
	// suggestion set from GET /api/mental-ally. Returns [ErrNetwork] (wrapped)
	// on transport failure, [*HTTPError] on a non-2xx status, or [ErrDecode]
	// (wrapped) if the body is not valid JSON.
	FetchMentalAllyData(ctx context.Context) (models.MentalAllyData, error)

	// FetchTaskQuests retrieves the list of gamified wellness tasks from
	// GET /api/task-quests. Same error taxonomy as FetchMentalAllyData.
	FetchTaskQuests(ctx context.Context) (models.QuestList, error)

	// CheckBurnout retrieves the current burnout assessment from
	// GET /api/burnout. Same error taxonomy as FetchMentalAllyData.
	CheckBurnout(ctx context.Context) (models.BurnoutResult, error)

	// TrackMood submits a mood entry to POST /api/mood-tracking with a
	// JSON-encoded body and Content-Type: application/json. Returns the
	// server's acknowledgement. Same error taxonomy as FetchMentalAllyData.
	TrackMood(ctx context.Context, entry models.MoodEntry) (models.TrackAck, error)

	// FetchForumPosts retrieves the community forum posts from
	// GET /api/forum-posts. Same error taxonomy as FetchMentalAllyData.
	FetchForumPosts(ctx context.Context) (models.ForumPostList, error)

	// TrackProgress submits a quest progress update to
	// POST /api/progress-tracking with a JSON-encoded body and
	// Content-Type: application/json. Returns the server's acknowledgement.
	// Same error taxonomy as FetchMentalAllyData.
	TrackProgress(ctx context.Context, update models.ProgressUpdate) (models.TrackAck, error)

	// FetchIntegratedFeatures retrieves the set of server-side feature
	// toggles from GET /api/integrated-features. Same error taxonomy as
	// FetchMentalAllyData.
	FetchIntegratedFeatures(ctx context.Context) (models.IntegratedFeatureSet, error)
}
