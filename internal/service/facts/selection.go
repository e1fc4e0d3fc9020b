package facts

import (
	"strings"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/normalize"
)

// selectionContext summarizes what the caller has already been shown for one movie.
type selectionContext struct {
	seenIDs []string
	seenSet map[string]struct{}
	// seenKeys holds normalized keys across the whole history.
	seenKeys map[string]struct{}
	// lastCategory is empty when the most recent fact is unknown or uncategorized.
	lastCategory core.Category
	// lastText holds the normalized text of the most recent fact, if any.
	lastText map[string]struct{}
}

func newSelectionContext(seenIDs []string, seen []core.Fact) selectionContext {
	sc := selectionContext{
		seenIDs:  seenIDs,
		seenSet:  make(map[string]struct{}, len(seenIDs)),
		seenKeys: make(map[string]struct{}),
		lastText: make(map[string]struct{}, 1),
	}
	for _, id := range seenIDs {
		sc.seenSet[id] = struct{}{}
	}

	for _, f := range seen {
		if f.Key == "" {
			continue
		}
		if k := normalize.Key(f.Key); k != "" {
			sc.seenKeys[k] = struct{}{}
		}
	}

	if len(seenIDs) == 0 {
		return sc
	}
	for _, f := range seen {
		if f.ID != seenIDs[0] {
			continue
		}
		sc.lastCategory = lowerCategory(f.Category)
		if f.Text != "" {
			sc.lastText[normalize.FactText(f.Text)] = struct{}{}
		}
		break
	}
	return sc
}

// previousID is the second most recent id, the one before the current fact.
func (sc selectionContext) previousID() (string, bool) {
	if len(sc.seenIDs) < 2 {
		return "", false
	}
	return sc.seenIDs[1], true
}

// pickBestStored chooses a stored candidate: a novel idea in a new category
// first, then any novel idea that is not a paraphrase of the last fact. Only
// facts with a key count as novel.
func pickBestStored(candidates []core.Fact, sc selectionContext) (core.Fact, bool) {
	novel := make([]core.Fact, 0, len(candidates))
	for _, c := range candidates {
		if _, seen := sc.seenSet[c.ID]; seen {
			continue
		}
		// keyless facts cannot be checked against seen ideas
		key := normalize.Key(c.Key)
		if key == "" {
			continue
		}
		if _, seen := sc.seenKeys[key]; seen {
			continue
		}
		novel = append(novel, c)
	}

	for _, c := range novel {
		if sc.lastCategory == "" {
			return c, true
		}
		if cat := lowerCategory(c.Category); cat != "" && cat != sc.lastCategory {
			return c, true
		}
	}

	for _, c := range novel {
		if _, repeat := sc.lastText[normalize.FactText(c.Text)]; !repeat {
			return c, true
		}
	}
	return core.Fact{}, false
}

// generationContext is the full-history view used to vet generated candidates.
type generationContext struct {
	existingKeys     map[string]struct{}
	existingText     map[string]struct{}
	avoidKeys        []string
	preferCategories []core.Category
}

func newGenerationContext(existing []core.Fact) generationContext {
	gc := generationContext{
		existingKeys: make(map[string]struct{}, len(existing)),
		existingText: make(map[string]struct{}, len(existing)),
	}

	used := make(map[core.Category]struct{})
	for _, f := range existing {
		if k := normalize.Key(f.Key); k != "" {
			if _, dup := gc.existingKeys[k]; !dup {
				gc.avoidKeys = append(gc.avoidKeys, k)
			}
			gc.existingKeys[k] = struct{}{}
		}
		gc.existingText[normalize.FactText(f.Text)] = struct{}{}
		if cat := lowerCategory(f.Category); cat != "" {
			used[cat] = struct{}{}
		}
	}

	for _, c := range core.AllCategories() {
		if _, ok := used[c]; !ok {
			gc.preferCategories = append(gc.preferCategories, c)
		}
	}
	return gc
}

func (gc generationContext) request(movie core.Movie) core.GenerateRequest {
	return core.GenerateRequest{
		MovieTitle:       movie.Title,
		MovieYear:        movie.Year,
		AvoidKeys:        gc.avoidKeys,
		PreferCategories: gc.preferCategories,
	}
}

type verdict string

const (
	verdictAccepted      verdict = "accepted"
	verdictEmpty         verdict = "empty"
	verdictDuplicateKey  verdict = "duplicate_key"
	verdictDuplicateText verdict = "duplicate_text"
	verdictLowConfidence verdict = "low_confidence"
	verdictSameCategory  verdict = "same_category"
)

// accepted is a candidate that passed every check, in stored form.
type accepted struct {
	Text     string
	Key      string
	Category core.Category
}

// judge applies the acceptance policy to one generated candidate.
func judge(c core.Candidate, gc generationContext, sc selectionContext, minConfidence float64) (accepted, verdict) {
	if c.Empty() {
		return accepted{}, verdictEmpty
	}

	key := normalize.Key(c.Key)
	if key == "" {
		return accepted{}, verdictEmpty
	}

	category := lowerCategory(c.Category)
	if !category.IsValid() {
		category = normalize.CategoryFromKey(key)
	}

	text := normalize.FactText(c.Text)

	if _, dup := gc.existingKeys[key]; dup {
		return accepted{}, verdictDuplicateKey
	}
	if _, dup := gc.existingText[text]; dup {
		return accepted{}, verdictDuplicateText
	}
	if _, dup := sc.lastText[text]; dup {
		return accepted{}, verdictDuplicateText
	}
	if c.Confidence < minConfidence {
		return accepted{}, verdictLowConfidence
	}
	if sc.lastCategory != "" && category == sc.lastCategory {
		return accepted{}, verdictSameCategory
	}

	return accepted{Text: c.Text, Key: key, Category: category}, verdictAccepted
}

func lowerCategory(c core.Category) core.Category {
	return core.Category(strings.ToLower(strings.TrimSpace(string(c))))
}
