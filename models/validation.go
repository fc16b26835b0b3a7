package models

// ValidationResult is the normalized outcome of an AI code review.
// CorrectedCode falls back to the submitted code.
type ValidationResult struct {
	IsValid       bool     `json:"isValid"`
	Errors        []string `json:"errors"`
	CorrectedCode string   `json:"correctedCode"`
	Suggestions   []string `json:"suggestions"`
}
