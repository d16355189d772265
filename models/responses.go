package models

// TrackAck is the acknowledgement body returned by the tracking endpoints
// (POST /api/mood-tracking, POST /api/progress-tracking). The server replies
// with a bare status string; any richer fields are ignored by this client.
type TrackAck struct {
	// Status is the server's acknowledgement value, "ok" on success.
	Status string `json:"status"`
}
