package pipeline

import (
	"encoding/json"
	"strings"
)

// Default metadata substituted whenever the model fails to produce the
// structured part of a draft. Tags must never be empty on a returned draft.
var defaultTags = []string{"document", "ai-processed"}

const defaultSummary = "Automatically processed document."

func fallbackTitle(originalName string) string {
	return "Processed: " + originalName
}

// decodeModelJSON attempts to read a strict JSON object out of a model
// response, tolerating the code fences and surrounding prose models like to
// add despite instructions. It reports whether decoding succeeded; it never
// returns an error, since every caller has a deterministic fallback.
func decodeModelJSON(raw string, v any) bool {
	s := strings.TrimSpace(raw)

	// Strip a markdown code fence if the whole reply is wrapped in one.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	// Narrow to the outermost object in case of leading or trailing prose.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return false
	}

	return json.Unmarshal([]byte(s[start:end+1]), v) == nil
}
