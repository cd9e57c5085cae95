package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject returns the substring from the first '{' to the last
// '}' of an oracle reply, which routinely arrives wrapped in prose or
// markdown fences. The second return reports whether a candidate exists.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseCategoryMap extracts a transaction-ID→label mapping from free
// text. Any parse failure degrades to an empty map, never an error:
// partial or malformed oracle output must not fail the pipeline.
func ParseCategoryMap(text string) map[string]string {
	candidate, ok := ExtractJSONObject(text)
	if !ok {
		return map[string]string{}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return map[string]string{}
	}

	labels := make(map[string]string, len(raw))
	for id, v := range raw {
		if label, isString := v.(string); isString {
			labels[id] = label
		}
	}

	return labels
}

// Insights is the structured form of the insights oracle reply.
type Insights struct {
	KeyInsights []string `json:"keyInsights"`
	Alerts      []string `json:"alerts"`
	Suggestions []string `json:"suggestions"`
}

// ParseInsights extracts the insights object from free text. Unlike the
// category map, a missing or structurally incomplete reply is an error
// the caller surfaces to the user.
func ParseInsights(text string) (Insights, error) {
	candidate, ok := ExtractJSONObject(text)
	if !ok {
		return Insights{}, fmt.Errorf("no JSON object found in oracle response")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return Insights{}, fmt.Errorf("failed to parse oracle response: %w", err)
	}

	for _, required := range []string{"keyInsights", "alerts", "suggestions"} {
		if _, present := fields[required]; !present {
			return Insights{}, fmt.Errorf("oracle response missing required field %q", required)
		}
	}

	var insights Insights
	if err := json.Unmarshal([]byte(candidate), &insights); err != nil {
		return Insights{}, fmt.Errorf("failed to parse oracle response: %w", err)
	}

	return insights, nil
}
