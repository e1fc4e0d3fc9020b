package generator

import (
	"html"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sandevgo/factbot/internal/core"
)

const defaultConfidence = 0.5

var textPolicy = bluemonday.StrictPolicy()

// extractObject decodes raw as a JSON object, falling back to the span from
// the first '{' to the last '}' when the provider wrapped it in prose.
func extractObject(raw string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
		return obj, true
	}

	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}

	obj = nil
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// parseCandidate converts a provider reply into a Candidate. Fields of the
// wrong type are treated as missing.
func parseCandidate(raw string) core.Candidate {
	obj, ok := extractObject(raw)
	if !ok {
		return core.Candidate{}
	}

	c := core.Candidate{Confidence: defaultConfidence}

	if s, ok := obj["fact_text"].(string); ok {
		c.Text = strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
	}
	if s, ok := obj["fact_key"].(string); ok {
		c.Key = strings.TrimSpace(s)
	}
	if s, ok := obj["category"].(string); ok {
		c.Category = core.Category(strings.ToLower(strings.TrimSpace(s)))
	}
	if f, ok := obj["confidence"].(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		c.Confidence = math.Max(0, math.Min(1, f))
	}

	return c
}
