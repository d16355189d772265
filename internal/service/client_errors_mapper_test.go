package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "network failure",
			err:     fmt.Errorf("track mood request: %w: %w", adapter.ErrNetwork, errors.New("connection refused")),
			wantErr: ErrServerUnavailable,
		},
		{
			name:    "decode failure",
			err:     fmt.Errorf("decode response: %w: %w", adapter.ErrDecode, errors.New("unexpected end of JSON input")),
			wantErr: ErrMalformedServerResponse,
		},
		{
			name:    "bad request",
			err:     &adapter.HTTPError{Status: http.StatusBadRequest, Body: "mood is required"},
			wantErr: ErrRejectedByServer,
		},
		{
			name:    "not found",
			err:     &adapter.HTTPError{Status: http.StatusNotFound},
			wantErr: ErrNotFoundOnServer,
		},
		{
			name:    "internal server error",
			err:     &adapter.HTTPError{Status: http.StatusInternalServerError, Body: "boom"},
			wantErr: ErrServerSideFailure,
		},
		{
			name:    "bad gateway",
			err:     &adapter.HTTPError{Status: http.StatusBadGateway},
			wantErr: ErrServerSideFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestMapAdapterError_UnknownStatusPassesThrough(t *testing.T) {
	// Статусы без выделенного sentinel не переводятся в бизнес-ошибку
	httpErr := &adapter.HTTPError{Status: http.StatusTeapot}

	got := mapAdapterError(httpErr)
	require.Error(t, got)

	var gotHTTP *adapter.HTTPError
	require.ErrorAs(t, got, &gotHTTP)
	assert.Equal(t, http.StatusTeapot, gotHTTP.Status)
}

func TestMapAdapterError_BadRequestKeepsBody(t *testing.T) {
	httpErr := &adapter.HTTPError{Status: http.StatusBadRequest, Body: "percent must be between 0 and 100"}

	got := mapAdapterError(httpErr)
	require.Error(t, got)
	assert.ErrorIs(t, got, ErrRejectedByServer)
	assert.Contains(t, got.Error(), "percent must be between 0 and 100")
}

func TestNewClientServices_NilDependencies(t *testing.T) {
	_, err := NewClientServices(nil, nil, nil)
	require.Error(t, err)
}

func TestMapAdapterError_ChainReachesHTTPError(t *testing.T) {
	// Цепочка не рвётся: *adapter.HTTPError достижим через errors.As
	wrapped := fmt.Errorf("track progress: %w", &adapter.HTTPError{Status: http.StatusInternalServerError})

	got := mapAdapterError(wrapped)
	require.Error(t, got)

	var gotHTTP *adapter.HTTPError
	require.ErrorAs(t, got, &gotHTTP)
}
