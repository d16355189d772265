package models

// IntegratedFeature describes a single server-side feature toggle.
type IntegratedFeature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// IntegratedFeatureSet is the response body of GET /api/integrated-features.
// The client fetches it once at startup to learn which features the server
// currently exposes.
type IntegratedFeatureSet struct {
	Features []IntegratedFeature `json:"features"`
}

// Enabled returns the names of all enabled features, preserving server order.
func (s IntegratedFeatureSet) Enabled() []string {
	names := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	return names
}
