// Package merge synthesizes one final answer from an on-device and a
// server candidate result. Strategy selection is fully deterministic;
// randomness is confined to connective phrasing and never influences the
// chosen strategy or any confidence value.
package merge

import (
	"math/rand"
	"time"

	"hybrid-command-router/internal/model"
)

// Strategy names recorded in MergedResult.Strategy and metadata.
const (
	StrategyUseOnDevice          = "use_on_device"
	StrategyUseServer            = "use_server"
	StrategyUseHighestConfidence = "use_highest_confidence"
	StrategyCombineResponses     = "combine_responses"
	StrategyContextAware         = "context_aware"
)

// Thresholds are the empirically chosen constants that draw the strategy
// selection boundaries. They are preserved as-is rather than re-derived;
// changing a magnitude shifts boundaries and test expectations.
type Thresholds struct {
	LowConfidenceFloor     float64 // below this, a result is discarded outright
	PrivacyConfidenceFloor float64 // min on-device confidence to honor privacy routing
	ConfidenceGap          float64 // absolute gap that makes one result clearly better
	OverlapLow             float64 // word-overlap band for "complementary" responses
	OverlapHigh            float64
	CloseConfidenceDelta   float64 // gap under which results count as equally confident
	CombineBonus           float64 // confidence bonus for successfully combined responses
	AgreementWeight        float64 // factual boost per unit of word-overlap agreement
	NumericTolerance       float64 // numbers closer than this count as matching
	ComputationalBoost     float64 // confidence boost when both paths computed the same numbers
	UncertaintyCeiling     float64 // confidence cap when computations disagree
	RelativeGap            float64 // relative confidence gap for conversational preference
}

// DefaultThresholds returns the standard constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowConfidenceFloor:     0.1,
		PrivacyConfidenceFloor: 0.3,
		ConfidenceGap:          0.3,
		OverlapLow:             0.2,
		OverlapHigh:            0.8,
		CloseConfidenceDelta:   0.15,
		CombineBonus:           0.1,
		AgreementWeight:        0.2,
		NumericTolerance:       0.01,
		ComputationalBoost:     0.3,
		UncertaintyCeiling:     0.6,
		RelativeGap:            0.30,
	}
}

// Merger applies the fixed strategy-selection ladder.
type Merger struct {
	thresholds Thresholds
	clock      func() time.Time
	rng        *rand.Rand
}

// Option configures a Merger.
type Option func(*Merger)

// WithClock overrides the monotonic clock used to measure merge duration.
func WithClock(clock func() time.Time) Option {
	return func(m *Merger) { m.clock = clock }
}

// WithPhrasingSeed fixes the seed of the phrasing RNG. Only connective
// word choice depends on it.
func WithPhrasingSeed(seed int64) Option {
	return func(m *Merger) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithThresholds overrides the strategy boundary constants.
func WithThresholds(t Thresholds) Option {
	return func(m *Merger) { m.thresholds = t }
}

// NewMerger creates a merger with default thresholds.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{
		thresholds: DefaultThresholds(),
		clock:      time.Now,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge selects a strategy for the candidate pair and produces the single
// synthesized result. Pure with respect to its inputs except for the
// clock read recording merge duration.
func (m *Merger) Merge(onDevice, server model.CandidateResult, decision model.ProcessingDecision) model.MergedResult {
	start := m.clock()
	t := m.thresholds

	overlap := overlapRatio(onDevice.ResponseText, server.ResponseText)
	gap := abs(onDevice.Confidence - server.Confidence)

	metadata := map[string]any{
		"on_device_confidence": onDevice.Confidence,
		"server_confidence":    server.Confidence,
		"confidence_gap":       gap,
		"overlap_ratio":        overlap,
	}

	var merged model.MergedResult
	switch {
	// Rule 1: a result below the floor is discarded outright.
	case onDevice.Confidence < t.LowConfidenceFloor:
		merged = m.useSingle(server, StrategyUseServer, metadata)
	case server.Confidence < t.LowConfidenceFloor:
		merged = m.useSingle(onDevice, StrategyUseOnDevice, metadata)

	// Rule 2: privacy-required commands stay on device when the local
	// answer is credible at all.
	case decision.PrivacyRequired && onDevice.Confidence > t.PrivacyConfidenceFloor:
		metadata["privacy_required"] = true
		merged = m.useSingle(onDevice, StrategyUseOnDevice, metadata)

	// Rule 3: one result is clearly more confident.
	case gap > t.ConfidenceGap:
		merged = m.useHighestConfidence(onDevice, server, metadata)

	// Rule 4: responses are complementary, combine them.
	case overlap > t.OverlapLow && overlap < t.OverlapHigh:
		merged = m.combineResponses(onDevice, server, metadata)

	// Rule 5: confidences are close, decide by response type.
	case gap < t.CloseConfidenceDelta:
		merged = m.contextAware(onDevice, server, overlap, metadata)

	// Rule 6: default.
	default:
		merged = m.useHighestConfidence(onDevice, server, metadata)
	}

	merged.MergeDuration = m.clock().Sub(start)
	return merged
}

// overlapRatio tokenizes both responses into word sets and returns
// |intersection| / |union|.
func overlapRatio(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
