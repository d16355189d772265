package models

import "time"

// Burnout risk bands reported by the server in BurnoutResult.Risk.
const (
	BurnoutRiskLow      = "low"
	BurnoutRiskModerate = "moderate"
	BurnoutRiskHigh     = "high"
)

// BurnoutResult is the response body of GET /api/burnout. Level is a 0-100
// score; Risk is the server's banding of that score.
type BurnoutResult struct {
	Level     int       `json:"level"`
	Risk      string    `json:"risk,omitempty"`
	Symptoms  []string  `json:"symptoms,omitempty"`
	Advice    string    `json:"advice,omitempty"`
	CheckedAt time.Time `json:"checked_at,omitzero"`
}
