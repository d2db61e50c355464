package intent

import (
	"regexp"
	"sort"
	"strings"

	"hybrid-command-router/internal/model"
)

const (
	// MinConfidence is the score floor below which classification falls
	// back to unknown/general.
	MinConfidence = 0.2

	exactMatchScore   = 1.0
	partialMatchScore = 0.5
	maxAlternatives   = 2
)

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Hints carries optional context for classification. The prior intent and
// time bucket are recorded for diagnostics; scoring itself stays purely
// lexical so results are reproducible from the text alone.
type Hints struct {
	PriorIntent model.Intent
	TimeOfDay   model.TimeOfDay
}

// Classifier maps normalized text to an intent category with a heuristic
// confidence score. It never fails: unmatched input yields general,
// empty input yields unknown.
type Classifier struct {
	patterns map[model.Intent][]string
}

// NewClassifier creates a classifier over the fixed trigger-pattern set.
func NewClassifier() *Classifier {
	return &Classifier{patterns: triggerPatterns}
}

// Classify scores the text against every category and picks the maximum.
// Ties resolve to whichever intent appears first in model.AllIntents.
func (c *Classifier) Classify(text string, hints Hints) model.ClassificationResult {
	normalized := normalize(text)
	if normalized == "" {
		return model.ClassificationResult{
			Intent:   model.IntentUnknown,
			Entities: map[string]string{},
		}
	}

	tokens := tokenize(normalized)
	scores := make(map[model.Intent]float64, len(c.patterns))
	for _, in := range model.AllIntents {
		patterns, ok := c.patterns[in]
		if !ok {
			continue
		}
		scores[in] = scoreAgainst(normalized, tokens, patterns)
	}

	best := model.IntentUnknown
	bestScore := 0.0
	for _, in := range model.AllIntents {
		if s := scores[in]; s > bestScore {
			best, bestScore = in, s
		}
	}

	entities := extractEntities(normalized)

	if bestScore < MinConfidence {
		return model.ClassificationResult{
			Intent:   model.IntentGeneral,
			Entities: entities,
		}
	}

	return model.ClassificationResult{
		Intent:       best,
		Confidence:   model.Clamp01(bestScore),
		Alternatives: alternatives(scores, best),
		Entities:     entities,
	}
}

// scoreAgainst applies the fixed scoring rule: 1.0 for an exact keyword or
// contained phrase, 0.5 for substring overlap in either direction, summed
// over the pattern list, normalized by list length and capped at 1.0.
func scoreAgainst(normalized string, tokens []string, patterns []string) float64 {
	if len(patterns) == 0 {
		return 0
	}

	var sum float64
	for _, p := range patterns {
		if strings.Contains(p, " ") {
			if strings.Contains(normalized, p) {
				sum += exactMatchScore
			}
			continue
		}

		best := 0.0
		for _, tok := range tokens {
			if tok == p {
				best = exactMatchScore
				break
			}
			if strings.Contains(tok, p) || strings.Contains(p, tok) {
				best = partialMatchScore
			}
		}
		sum += best
	}

	return model.Clamp01(sum / float64(len(patterns)))
}

// alternatives returns up to two other non-unknown intents that scored
// anything, with a placeholder reduced confidence. Informational only.
func alternatives(scores map[model.Intent]float64, winner model.Intent) []model.ScoredIntent {
	var alts []model.ScoredIntent
	for _, in := range model.AllIntents {
		if in == winner || in == model.IntentUnknown {
			continue
		}
		if s := scores[in]; s > 0 {
			alts = append(alts, model.ScoredIntent{Intent: in, Score: s * partialMatchScore})
		}
	}

	sort.SliceStable(alts, func(i, j int) bool { return alts[i].Score > alts[j].Score })
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}
	return alts
}

// extractEntities pulls the simple lexical entities downstream handlers
// care about: numeric tokens and relative-date words.
func extractEntities(normalized string) map[string]string {
	entities := map[string]string{}

	if numbers := numberPattern.FindAllString(normalized, -1); len(numbers) > 0 {
		entities["numbers"] = strings.Join(numbers, ",")
	}

	for _, word := range []string{"today", "tomorrow", "yesterday"} {
		if containsWord(normalized, word) {
			entities["relative_date"] = word
			break
		}
	}

	return entities
}

func containsWord(normalized, word string) bool {
	for _, w := range strings.Fields(normalized) {
		if w == word {
			return true
		}
	}
	return false
}
