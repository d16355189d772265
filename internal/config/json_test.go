package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" thanks to the Duration wrapper.
	jsonBody := `{
		"app": {
			"version": "2.0.1"
		},
		"adapter": {
			"server_url": "http://localhost:9191",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "journal_path": "/var/data/journal.db" }
		},
		"workers": {
			"reminder_interval": "45s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.1", cfg.App.Version)

	assert.Equal(t, "http://localhost:9191", cfg.Adapter.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/data/journal.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 45*time.Second, cfg.Workers.ReminderInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string duration", `"1h"`, time.Hour, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage string", `"one hour"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
