package intent

import "strings"

// contractions is the fixed expansion table applied before tokenizing.
var contractions = map[string]string{
	"what's":  "what is",
	"who's":   "who is",
	"where's": "where is",
	"how's":   "how is",
	"that's":  "that is",
	"it's":    "it is",
	"i'm":     "i am",
	"you're":  "you are",
	"don't":   "do not",
	"can't":   "cannot",
	"won't":   "will not",
	"isn't":   "is not",
}

// stopWords are dropped during tokenization. Words of length <= 2 are
// dropped regardless, so short function words are not listed.
var stopWords = map[string]struct{}{
	"the":    {},
	"and":    {},
	"for":    {},
	"with":   {},
	"this":   {},
	"that":   {},
	"from":   {},
	"please": {},
	"could":  {},
	"would":  {},
	"will":   {},
	"just":   {},
	"about":  {},
}

// normalize lowercases, trims, strips punctuation except apostrophes and
// expands the contraction table.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == ' ', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		if expanded, ok := contractions[w]; ok {
			words[i] = expanded
		}
	}
	return strings.Join(words, " ")
}

// tokenize splits normalized text into keyword candidates: stop words and
// words shorter than 3 characters do not count.
func tokenize(normalized string) []string {
	var tokens []string
	for _, w := range strings.Fields(normalized) {
		w = strings.Trim(w, ".")
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
