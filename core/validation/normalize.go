// Package validation turns the raw text returned by the code-review model
// into a well-typed ValidationResult, whatever shape the text is in.
package validation

import (
	"encoding/json"
	"regexp"
	"strings"

	"botforge/models"
)

const (
	GenericErrorMessage    = "Code validation detected potential issues"
	ManualReviewSuggestion = "Manual review recommended"
)

var (
	issueTokens  = []string{"error", "invalid", "missing"}
	fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_+-]*[ \t]*\r?\n(.*?)\r?\n?```$")
)

// Decoded is the outcome of decoding an untrusted review payload: either a
// StructuredResult or an UnstructuredFallback.
type Decoded interface {
	Resolve(originalCode string) models.ValidationResult
}

// StructuredResult is a payload that parsed as a JSON object carrying at
// least one of the result fields. Absent fields are nil.
type StructuredResult struct {
	IsValid       *bool    `json:"isValid"`
	Errors        []string `json:"errors"`
	CorrectedCode *string  `json:"correctedCode"`
	Suggestions   []string `json:"suggestions"`
}

// UnstructuredFallback is a payload that was prose rather than data.
type UnstructuredFallback struct {
	Text string
}

// Decode classifies raw model output.
func Decode(raw string) Decoded {
	body := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(body); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil || !hasResultField(fields) {
		return UnstructuredFallback{Text: raw}
	}

	var result StructuredResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		// right keys, wrong value types
		return UnstructuredFallback{Text: raw}
	}
	return result
}

// Resolve passes the structured result through, filling the gaps: a missing
// correction becomes the original code, missing lists become empty and a
// missing verdict is derived from the error list.
func (r StructuredResult) Resolve(originalCode string) models.ValidationResult {
	result := models.ValidationResult{
		Errors:        nonNil(r.Errors),
		CorrectedCode: originalCode,
		Suggestions:   nonNil(r.Suggestions),
	}

	if r.IsValid != nil {
		result.IsValid = *r.IsValid
	} else {
		result.IsValid = len(result.Errors) == 0
	}
	if r.CorrectedCode != nil && *r.CorrectedCode != "" {
		result.CorrectedCode = *r.CorrectedCode
	}

	return result
}

// Resolve applies the keyword heuristic: any mention of an issue token marks
// the code invalid with a generic message.
func (f UnstructuredFallback) Resolve(originalCode string) models.ValidationResult {
	lower := strings.ToLower(f.Text)
	for _, token := range issueTokens {
		if strings.Contains(lower, token) {
			return models.ValidationResult{
				IsValid:       false,
				Errors:        []string{GenericErrorMessage},
				CorrectedCode: originalCode,
				Suggestions:   []string{ManualReviewSuggestion},
			}
		}
	}

	return models.ValidationResult{
		IsValid:       true,
		Errors:        []string{},
		CorrectedCode: originalCode,
		Suggestions:   []string{},
	}
}

// Normalize decodes rawResponseText and resolves it against originalCode.
// It never fails.
func Normalize(rawResponseText, originalCode string) models.ValidationResult {
	return Decode(rawResponseText).Resolve(originalCode)
}

func hasResultField(fields map[string]json.RawMessage) bool {
	for _, key := range []string{"isValid", "errors", "correctedCode", "suggestions"} {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
