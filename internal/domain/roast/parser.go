package roast

import (
	"encoding/json"
	"regexp"
	"strings"
)

const unexpectedFormatNotice = "AI returned an unexpected format. Here's the raw output: "

var fencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// ParseOutcome records which tier of the parser produced a result.
type ParseOutcome string

const (
	// OutcomeStrict means the text decoded as a JSON array of strings.
	OutcomeStrict ParseOutcome = "strict"
	// OutcomeWrongShape means the text was valid JSON of another shape and was surfaced verbatim.
	OutcomeWrongShape ParseOutcome = "wrong_shape"
	// OutcomeLineSplit means the text was not JSON and was split into lines.
	OutcomeLineSplit ParseOutcome = "line_split"
)

// StripCodeFences unwraps a single fenced block spanning the whole trimmed
// text. Anything else is returned trimmed.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if match := fencePattern.FindStringSubmatch(trimmed); match != nil && match[1] != "" {
		return strings.TrimSpace(match[1])
	}
	return trimmed
}

// ParseResponse turns untrusted model output into roast items.
//
// Valid JSON is never line-split: an array of strings is filtered for blank
// entries, and any other JSON value becomes a single notice item carrying the
// cleaned text. Only text that fails to decode falls through to line splitting.
func ParseResponse(raw string) (Result, ParseOutcome, error) {
	cleaned := StripCodeFences(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		lines := splitResponseLines(cleaned)
		if len(lines) == 0 {
			return Failure(errGarbledResponse()), OutcomeLineSplit, errGarbledResponse()
		}
		return Success(lines), OutcomeLineSplit, nil
	}

	items, ok := asStringSlice(decoded)
	if !ok {
		return Success([]string{unexpectedFormatNotice + cleaned}), OutcomeWrongShape, nil
	}

	valid := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		valid = append(valid, item)
	}
	if len(valid) == 0 {
		return Failure(errEmptyRoast()), OutcomeStrict, errEmptyRoast()
	}
	return Success(valid), OutcomeStrict, nil
}

func asStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func splitResponseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "[" || line == "]" || strings.HasPrefix(line, "```") {
			continue
		}
		out = append(out, line)
	}
	return out
}
