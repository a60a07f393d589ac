package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/chibuzordev/posterio/types"
)

// StructuredResult is the planning object recovered from model output. All
// fields are optional; an empty result is still a successful repair.
type StructuredResult struct {
	Goal        types.RawObject
	Templates   []types.Template
	ActionItems []types.ActionItem
	Deadline    *string
	Reminders   []types.Reminder
}

// ErrorPayload is the terminal structured-mode result when repair fails.
// RawOutput is always the original model text, never a normalized
// intermediate, so callers can inspect exactly what the model produced.
type ErrorPayload struct {
	Error     string
	RawOutput string
}

const (
	errNoJSONDetected = "No JSON detected"
	errParseFailed    = "JSON parse failed"
)

var trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

// Repair recovers a structured object from raw model output that was asked
// to be strict JSON but frequently is not. Stages, stopping at the first
// success:
//
//  1. parse the text verbatim
//  2. extract the widest brace-delimited substring (first '{' to last '}')
//  3. normalize curly quotes and trailing commas within the substring
//  4. parse the normalized substring
//
// Nothing beyond stage 3 is attempted, which keeps the repair policy a
// finite, auditable list of transformations.
func Repair(raw string) (StructuredResult, *ErrorPayload) {
	if result, err := decodeStructured(raw); err == nil {
		return result, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return StructuredResult{}, &ErrorPayload{Error: errNoJSONDetected, RawOutput: raw}
	}

	text := raw[start : end+1]
	text = strings.ReplaceAll(text, "“", `"`)
	text = strings.ReplaceAll(text, "”", `"`)
	text = trailingCommaRegex.ReplaceAllString(text, "$1")

	if result, err := decodeStructured(text); err == nil {
		return result, nil
	}
	return StructuredResult{}, &ErrorPayload{Error: errParseFailed, RawOutput: raw}
}

// decodeStructured parses text as a JSON object and lifts the known schema
// fields out of it. Decoding is deliberately lenient: a missing field or a
// field of the wrong type is left unset instead of failing the whole object,
// matching the reference behavior of accepting schema-sparse output.
func decodeStructured(text string) (StructuredResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return StructuredResult{}, err
	}

	var result StructuredResult
	if v, ok := fields["goal"]; ok && string(v) != "null" {
		result.Goal = v
	}
	if v, ok := fields["templates"]; ok {
		_ = json.Unmarshal(v, &result.Templates)
	}
	if v, ok := fields["action_items"]; ok {
		_ = json.Unmarshal(v, &result.ActionItems)
	}
	if v, ok := fields["deadline"]; ok {
		_ = json.Unmarshal(v, &result.Deadline)
	}
	if v, ok := fields["reminders"]; ok {
		_ = json.Unmarshal(v, &result.Reminders)
	}
	return result, nil
}
