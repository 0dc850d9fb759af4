package models

// Recommendation is a redacted candidate profile plus its match score.
type Recommendation struct {
	PublicProfile
	MatchScore float64 `json:"matchScore"`
}
