package model

// ScoredIntent is an alternative intent with its heuristic score.
// Alternatives are informational only and must never drive routing.
type ScoredIntent struct {
	Intent Intent
	Score  float64
}

// ClassificationResult is the outcome of classifying one utterance.
// Confidence is a bounded heuristic score, ordinal rather than a calibrated
// probability. Created per utterance and consumed immediately.
type ClassificationResult struct {
	Intent       Intent
	Confidence   float64
	Alternatives []ScoredIntent
	Entities     map[string]string
}
