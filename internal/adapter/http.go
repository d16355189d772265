package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/neurox/neurox2-client/internal/config"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/utils"
	"github.com/neurox/neurox2-client/models"
)

type httpWellnessAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPWellnessAdapter constructs an HTTP/REST implementation of
// [WellnessAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPWellnessAdapter(adapterCfg config.Adapter, log *logger.Logger) (WellnessAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid wellness server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	log.Debug().Str("func", "NewHTTPWellnessAdapter").Str("base_url", baseURL).Msg("wellness adapter configured")

	return &httpWellnessAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchMentalAllyData implements [WellnessAdapter]. It GETs /api/mental-ally
// and decodes the response into [models.MentalAllyData].
func (h *httpWellnessAdapter) FetchMentalAllyData(ctx context.Context) (models.MentalAllyData, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/mental-ally")
	if err != nil {
		return models.MentalAllyData{}, fmt.Errorf("mental ally request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MentalAllyData{}, err
	}

	var ally models.MentalAllyData
	if err = decodeBody(resp.Body(), &ally); err != nil {
		return models.MentalAllyData{}, fmt.Errorf("decode mental ally response: %w", err)
	}

	return ally, nil
}

// FetchTaskQuests implements [WellnessAdapter]. It GETs /api/task-quests and
// decodes the response into [models.QuestList].
func (h *httpWellnessAdapter) FetchTaskQuests(ctx context.Context) (models.QuestList, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/task-quests")
	if err != nil {
		return models.QuestList{}, fmt.Errorf("task quests request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuestList{}, err
	}

	var quests models.QuestList
	if err = decodeBody(resp.Body(), &quests); err != nil {
		return models.QuestList{}, fmt.Errorf("decode task quests response: %w", err)
	}

	return quests, nil
}

// CheckBurnout implements [WellnessAdapter]. It GETs /api/burnout and decodes
// the response into [models.BurnoutResult].
func (h *httpWellnessAdapter) CheckBurnout(ctx context.Context) (models.BurnoutResult, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/burnout")
	if err != nil {
		return models.BurnoutResult{}, fmt.Errorf("burnout check request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BurnoutResult{}, err
	}

	var result models.BurnoutResult
	if err = decodeBody(resp.Body(), &result); err != nil {
		return models.BurnoutResult{}, fmt.Errorf("decode burnout response: %w", err)
	}

	return result, nil
}

// TrackMood implements [WellnessAdapter]. It POSTs the JSON-encoded entry to
// /api/mood-tracking and decodes the server acknowledgement.
func (h *httpWellnessAdapter) TrackMood(ctx context.Context, entry models.MoodEntry) (models.TrackAck, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Post("/api/mood-tracking")
	if err != nil {
		return models.TrackAck{}, fmt.Errorf("mood tracking request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrackAck{}, err
	}

	var ack models.TrackAck
	if err = decodeBody(resp.Body(), &ack); err != nil {
		return models.TrackAck{}, fmt.Errorf("decode mood tracking response: %w", err)
	}

	return ack, nil
}

// FetchForumPosts implements [WellnessAdapter]. It GETs /api/forum-posts and
// decodes the response into [models.ForumPostList].
func (h *httpWellnessAdapter) FetchForumPosts(ctx context.Context) (models.ForumPostList, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/forum-posts")
	if err != nil {
		return models.ForumPostList{}, fmt.Errorf("forum posts request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ForumPostList{}, err
	}

	var posts models.ForumPostList
	if err = decodeBody(resp.Body(), &posts); err != nil {
		return models.ForumPostList{}, fmt.Errorf("decode forum posts response: %w", err)
	}

	return posts, nil
}

// TrackProgress implements [WellnessAdapter]. It POSTs the JSON-encoded update
// to /api/progress-tracking and decodes the server acknowledgement.
func (h *httpWellnessAdapter) TrackProgress(ctx context.Context, update models.ProgressUpdate) (models.TrackAck, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Post("/api/progress-tracking")
	if err != nil {
		return models.TrackAck{}, fmt.Errorf("progress tracking request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrackAck{}, err
	}

	var ack models.TrackAck
	if err = decodeBody(resp.Body(), &ack); err != nil {
		return models.TrackAck{}, fmt.Errorf("decode progress tracking response: %w", err)
	}

	return ack, nil
}

// FetchIntegratedFeatures implements [WellnessAdapter]. It GETs
// /api/integrated-features and decodes the response into
// [models.IntegratedFeatureSet].
func (h *httpWellnessAdapter) FetchIntegratedFeatures(ctx context.Context) (models.IntegratedFeatureSet, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/integrated-features")
	if err != nil {
		return models.IntegratedFeatureSet{}, fmt.Errorf("integrated features request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IntegratedFeatureSet{}, err
	}

	var features models.IntegratedFeatureSet
	if err = decodeBody(resp.Body(), &features); err != nil {
		return models.IntegratedFeatureSet{}, fmt.Errorf("decode integrated features response: %w", err)
	}

	return features, nil
}

func decodeBody(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
