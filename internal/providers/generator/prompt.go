package generator

import (
	"fmt"
	"strings"

	"github.com/sandevgo/factbot/internal/core"
)

var systemPrompt = `Return STRICT JSON with keys:
fact_text (string),
confidence (0..1),
fact_key (string),
category (one of: ` + joinCategories(core.AllCategories()) + `).

Rules:
- Use digits for numbers (e.g., 4 not "four").
- Use canonical tokens in fact_key: "oscars" (not "academy_awards"), "visual_effects" (not "vfx"), "sci_fi" (not "science_fiction").
- Keep to 1-2 sentences. Avoid spoilers beyond the first 10 minutes.
- fact_key is a SHORT lowercase underscore key for the core claim.`

const userPromptTemplate = `Movie: %s
Avoid keys (do NOT reuse): %s
Prefer unused categories first: %s
Return JSON ONLY, e.g.: {"fact_text":"The film popularized 'bullet time' slow-motion, achieved with a rig of still cameras.","confidence":0.83,"fact_key":"bullet_time_visual_effects","category":"production"}`

func buildMessages(req core.GenerateRequest) []core.Message {
	title := core.Movie{Title: req.MovieTitle, Year: req.MovieYear}.DisplayTitle()

	return []core.Message{
		{Role: core.RoleSystem, Content: systemPrompt},
		{Role: core.RoleUser, Content: fmt.Sprintf(userPromptTemplate,
			title,
			orNone(strings.Join(req.AvoidKeys, ", ")),
			orNone(joinCategories(req.PreferCategories)),
		)},
	}
}

func joinCategories(cats []core.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
