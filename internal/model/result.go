package model

import "time"

// SourceLocation identifies which execution path produced a result.
type SourceLocation string

const (
	SourceOnDevice SourceLocation = "on_device"
	SourceServer   SourceLocation = "server"
	SourceHybrid   SourceLocation = "hybrid"
)

// CandidateResult is one execution path's answer plus its metadata.
// Immutable once produced; the hybrid branches never share state.
type CandidateResult struct {
	ResponseText string
	Audio        []byte
	Confidence   float64 // clamped to [0,1]
	Cost         float64 // estimated, non-negative
	PrivacyScore float64 // 0 = fully exposed, 1 = fully private
	Source       SourceLocation
}

// MergedResult is the single synthesized answer produced from two
// candidate results. Derived, never mutated after construction.
type MergedResult struct {
	ResponseText  string
	Audio         []byte
	Confidence    float64
	Cost          float64
	PrivacyScore  float64
	Strategy      string
	PrimarySource SourceLocation
	MergeDuration time.Duration
	Metadata      map[string]any
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
