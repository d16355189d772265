package models

// AllySuggestion is one piece of advice produced by the mental ally.
type AllySuggestion struct {
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message"`
}

// MentalAllyData is the response body of GET /api/mental-ally: the ally's
// greeting plus its current set of suggestions, ordered by relevance.
type MentalAllyData struct {
	Greeting    string           `json:"greeting,omitempty"`
	Suggestions []AllySuggestion `json:"suggestions"`
}
