// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged and defaulted [StructuredConfig]
// satisfies all client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReminderInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
