// Package normalize turns free-form fact text, claim keys and titles into
// canonical forms used only for comparison. Every function is pure and total.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sandevgo/factbot/internal/core"
)

var (
	factPunctuation = regexp.MustCompile("[-–—_,.!?;:()\\[\\]{}'\"`]")
	factStopwords   = regexp.MustCompile(`\b(?:the|a|an|on|in|of|to|and|for|with|by|at|from)\b`)
	keySeparators   = regexp.MustCompile(`[^a-z0-9]+`)
)

var numberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"ten": "10", "eleven": "11", "twelve": "12", "thirteen": "13",
	"fourteen": "14", "fifteen": "15", "sixteen": "16", "seventeen": "17",
	"eighteen": "18", "nineteen": "19", "twenty": "20", "thirty": "30",
	"forty": "40", "fifty": "50", "sixty": "60", "seventy": "70",
	"eighty": "80", "ninety": "90", "hundred": "100",
}

// keySynonyms folds token sequences into canonical tokens. Longer phrases are
// listed first so that matching is greedy.
var keySynonyms = []struct {
	phrase    []string
	canonical string
}{
	{[]string{"best", "film", "editing"}, "film_editing"},
	{[]string{"best", "sound", "editing"}, "sound_editing"},
	{[]string{"best", "sound", "mixing"}, "sound_mixing"},
	{[]string{"academy", "awards"}, "oscars"},
	{[]string{"academy", "award"}, "oscars"},
	{[]string{"visual", "effects"}, "visual_effects"},
	{[]string{"visual", "effect"}, "visual_effects"},
	{[]string{"science", "fiction"}, "sci_fi"},
	{[]string{"sci", "fi"}, "sci_fi"},
	{[]string{"film", "editing"}, "film_editing"},
	{[]string{"sound", "editing"}, "sound_editing"},
	{[]string{"sound", "mixing"}, "sound_mixing"},
	{[]string{"oscars"}, "oscars"},
	{[]string{"oscar"}, "oscars"},
	{[]string{"vfx"}, "visual_effects"},
	{[]string{"scifi"}, "sci_fi"},
}

// Title lowercases s, keeps only letters, digits and spaces, and collapses whitespace.
func Title(s string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(s))
	return strings.Join(strings.Fields(kept), " ")
}

// FactText reduces fact text to a phrasing-insensitive form for equality checks.
func FactText(s string) string {
	s = strings.ToLower(s)
	s = factPunctuation.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = factStopwords.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Key canonicalizes a short claim key: underscores between alphanumeric
// tokens, number words as digits and synonyms folded.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = keySeparators.ReplaceAllString(s, "_")

	var tokens []string
	for _, tok := range strings.Split(s, "_") {
		if tok == "" {
			continue
		}
		if digits, ok := numberWords[tok]; ok {
			tok = digits
		}
		tokens = append(tokens, tok)
	}

	return strings.Join(foldSynonyms(tokens), "_")
}

func foldSynonyms(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for _, syn := range keySynonyms {
			if hasPhrase(tokens[i:], syn.phrase) {
				out = append(out, syn.canonical)
				i += len(syn.phrase)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}

func hasPhrase(tokens, phrase []string) bool {
	if len(tokens) < len(phrase) {
		return false
	}
	for i, p := range phrase {
		if tokens[i] != p {
			return false
		}
	}
	return true
}

var categoryRules = []struct {
	pattern  *regexp.Regexp
	category core.Category
}{
	{regexp.MustCompile(`oscar|oscars|award`), core.CategoryAwards},
	{regexp.MustCompile(`box_office|gross|revenue`), core.CategoryBoxOffice},
	{regexp.MustCompile(`visual_effects|vfx|stunt|choreography|bullet_time|wirework`), core.CategoryProduction},
	{regexp.MustCompile(`editing|sound_editing|sound_mixing|cinematography|screenplay`), core.CategoryProduction},
	{regexp.MustCompile(`reception|critics?|rotten_tomatoes|metacritic|imdb`), core.CategoryReception},
	{regexp.MustCompile(`casting|cast|actor|actress`), core.CategoryCasting},
	{regexp.MustCompile(`director|direction|wachowski`), core.CategoryDirection},
	{regexp.MustCompile(`soundtrack|score|music|composer`), core.CategorySoundtrack},
	{regexp.MustCompile(`filming|location|shoot|australia|studio`), core.CategoryFilming},
	{regexp.MustCompile(`release|distribution|marketing|premiere`), core.CategoryRelease},
}

// CategoryFromKey classifies a key by keyword, defaulting to misc.
func CategoryFromKey(key string) core.Category {
	k := strings.ToLower(key)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(k) {
			return rule.category
		}
	}
	return core.CategoryMisc
}
