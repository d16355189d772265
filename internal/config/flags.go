package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-server-url wellness server base URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-j/-journal local journal SQLite file path
//	-reminder-interval reminder job wake-up interval (e.g., "1m", "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverURL string
	var requestTimeout time.Duration
	var journalPath string
	var reminderInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverURL, "s", "", "Wellness server base URL")
	flag.StringVar(&serverURL, "server-url", "", "Wellness server base URL (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&journalPath, "j", "", "Journal SQLite file path")
	flag.StringVar(&journalPath, "journal", "", "Journal SQLite file path (alias)")
	flag.DurationVar(&reminderInterval, "reminder-interval", 0, "Reminder job interval (e.g., 1m, 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: journalPath,
			},
		},
		Workers: Workers{
			ReminderInterval: reminderInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
