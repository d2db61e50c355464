package merge

import "strings"

// responseType buckets combined response text for the context-aware
// strategy.
type responseType string

const (
	responseFactual        responseType = "factual"
	responseCreative       responseType = "creative"
	responsePersonal       responseType = "personal"
	responseComputational  responseType = "computational"
	responseConversational responseType = "conversational"
)

// classifyResponseType applies the fixed keyword heuristics in a fixed
// order; the first bucket that matches wins.
func classifyResponseType(text string) responseType {
	lower := strings.ToLower(text)

	switch {
	case containsDigit(lower) || strings.Contains(lower, "calculate") || strings.Contains(lower, "result"):
		return responseComputational
	case strings.Contains(lower, "you") || strings.Contains(lower, "your") || strings.Contains(lower, "personal"):
		return responsePersonal
	case strings.Contains(lower, "story") || strings.Contains(lower, "imagine"):
		return responseCreative
	case strings.Contains(lower, "definition") || strings.Contains(lower, "fact"):
		return responseFactual
	default:
		return responseConversational
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
