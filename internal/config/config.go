// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the NeuroX2
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the wellness server adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local wellness journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs such as the health
	// reminder scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "2.0.1"). Shown on the dashboard.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// ServerURL is the base URL of the NeuroX2 wellness server
	// (e.g. "http://localhost:8080"). A bare host:port is accepted and
	// normalised to http://.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence backends.
type Storage struct {
	// DB holds the local journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite journal.
type DB struct {
	// DSN is the SQLite file path for the wellness journal
	// (e.g. "neurox-journal.db").
	// Env: STORAGE_DB_JOURNAL_PATH
	DSN string `env:"JOURNAL_PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReminderInterval is how often the reminder job wakes up to check for
	// due health reminders (e.g. "1m", "30s").
	// Env: WORKERS_REMINDER_INTERVAL
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`
}

// Defaults applied by GetClientConfig when a field is left unset by all
// configuration sources.
const (
	DefaultServerURL        = "http://localhost:8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultJournalPath      = "neurox-journal.db"
	DefaultReminderInterval = time.Minute
)

// GetClientConfig loads, merges, defaults, and validates the client
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = DefaultServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultJournalPath
	}
	if cfg.Workers.ReminderInterval == 0 {
		cfg.Workers.ReminderInterval = DefaultReminderInterval
	}
}
