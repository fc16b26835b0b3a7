package commandspec

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \t]*\r?\n(.*?)```")

type codeEnvelope struct {
	Code *string `json:"code"`
}

// UnwrapGeneratedCode returns the command source contained in a raw model
// response. The model is asked to answer with a JSON object carrying a
// "code" field, but frequently answers with a fenced code block or with
// bare source instead; all three forms are accepted.
func UnwrapGeneratedCode(raw string) string {
	text := stripFence(strings.TrimSpace(raw))

	var envelope codeEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err == nil && envelope.Code != nil {
		text = stripFence(strings.TrimSpace(*envelope.Code))
	}

	return text
}

// stripFence returns the body of the first fenced code block in text, or
// text unchanged when there is none.
func stripFence(text string) string {
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	return strings.TrimSpace(m[1])
}
