package merge

import (
	"fmt"
	"regexp"
	"strings"

	"hybrid-command-router/internal/model"
)

var connectives = []string{"Also,", "Additionally,", "And", "Plus,"}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// useSingle adopts one candidate exclusively.
func (m *Merger) useSingle(primary model.CandidateResult, strategy string, metadata map[string]any) model.MergedResult {
	metadata["strategy"] = strategy
	return model.MergedResult{
		ResponseText:  primary.ResponseText,
		Audio:         primary.Audio,
		Confidence:    model.Clamp01(primary.Confidence),
		Cost:          primary.Cost,
		PrivacyScore:  primary.PrivacyScore,
		Strategy:      strategy,
		PrimarySource: primary.Source,
		Metadata:      metadata,
	}
}

// useHighestConfidence picks the more confident result as primary and
// blends cost and privacy as confidence-weighted averages of both. Ties
// go to the server result.
func (m *Merger) useHighestConfidence(onDevice, server model.CandidateResult, metadata map[string]any) model.MergedResult {
	primary, secondary := server, onDevice
	if onDevice.Confidence > server.Confidence {
		primary, secondary = onDevice, server
	}

	totalWeight := onDevice.Confidence + server.Confidence
	cost := (onDevice.Cost + server.Cost) / 2
	privacy := (onDevice.PrivacyScore + server.PrivacyScore) / 2
	if totalWeight > 0 {
		cost = (onDevice.Cost*onDevice.Confidence + server.Cost*server.Confidence) / totalWeight
		privacy = (onDevice.PrivacyScore*onDevice.Confidence + server.PrivacyScore*server.Confidence) / totalWeight
	}

	metadata["strategy"] = StrategyUseHighestConfidence
	metadata["primary_source"] = string(primary.Source)

	return model.MergedResult{
		ResponseText:  primary.ResponseText,
		Audio:         firstAudio(primary, secondary),
		Confidence:    model.Clamp01(primary.Confidence),
		Cost:          cost,
		PrivacyScore:  privacy,
		Strategy:      StrategyUseHighestConfidence,
		PrimarySource: primary.Source,
		Metadata:      metadata,
	}
}

// combineResponses joins two complementary responses. A response more
// than twice as long as the other wins verbatim; otherwise both are
// concatenated with a fixed connective.
func (m *Merger) combineResponses(onDevice, server model.CandidateResult, metadata map[string]any) model.MergedResult {
	metadata["strategy"] = StrategyCombineResponses

	wordsOnDevice := len(strings.Fields(onDevice.ResponseText))
	wordsServer := len(strings.Fields(server.ResponseText))
	metadata["on_device_words"] = wordsOnDevice
	metadata["server_words"] = wordsServer

	primary, secondary := server, onDevice
	if onDevice.Confidence > server.Confidence {
		primary, secondary = onDevice, server
	}

	var text string
	switch {
	case wordsOnDevice > 2*wordsServer:
		text = onDevice.ResponseText
		primary, secondary = onDevice, server
	case wordsServer > 2*wordsOnDevice:
		text = server.ResponseText
		primary, secondary = server, onDevice
	default:
		text = fmt.Sprintf("%s Additionally, %s", primary.ResponseText, lowerFirst(secondary.ResponseText))
	}

	confidence := model.Clamp01((onDevice.Confidence+server.Confidence)/2 + m.thresholds.CombineBonus)
	metadata["primary_source"] = string(primary.Source)

	return model.MergedResult{
		ResponseText: text,
		Audio:        firstAudio(primary, secondary),
		Confidence:   confidence,
		// Both paths were paid for.
		Cost:          onDevice.Cost + server.Cost,
		PrivacyScore:  minFloat(onDevice.PrivacyScore, server.PrivacyScore),
		Strategy:      StrategyCombineResponses,
		PrimarySource: primary.Source,
		Metadata:      metadata,
	}
}

// contextAware classifies the combined text and applies a type-specific
// sub-strategy.
func (m *Merger) contextAware(onDevice, server model.CandidateResult, overlap float64, metadata map[string]any) model.MergedResult {
	t := m.thresholds
	combined := onDevice.ResponseText + " " + server.ResponseText
	responseType := classifyResponseType(combined)

	metadata["strategy"] = StrategyContextAware
	metadata["response_type"] = string(responseType)

	switch responseType {
	case responseFactual:
		// Prefer the server, boosted by how much the on-device result agrees.
		metadata["agreement_score"] = overlap
		merged := m.useSingle(server, StrategyContextAware, metadata)
		merged.Confidence = model.Clamp01(server.Confidence + overlap*t.AgreementWeight)
		merged.PrimarySource = model.SourceServer
		return merged

	case responseCreative:
		text := server.ResponseText
		if personal := personalizedTokens(onDevice.ResponseText); len(personal) > 0 {
			metadata["personalized_tokens"] = strings.Join(personal, ",")
			text = fmt.Sprintf("%s (keeping in mind: %s)", text, strings.Join(personal, ", "))
		}
		merged := m.useSingle(server, StrategyContextAware, metadata)
		merged.ResponseText = text
		return merged

	case responsePersonal:
		// Personal content defers entirely to the device.
		return m.useSingle(onDevice, StrategyContextAware, metadata)

	case responseComputational:
		return m.mergeComputational(onDevice, server, metadata)

	default: // conversational
		return m.mergeConversational(onDevice, server, metadata)
	}
}

// mergeComputational cross-checks the numbers both paths produced.
func (m *Merger) mergeComputational(onDevice, server model.CandidateResult, metadata map[string]any) model.MergedResult {
	t := m.thresholds

	numsOnDevice := extractNumbers(onDevice.ResponseText)
	numsServer := extractNumbers(server.ResponseText)

	higher := server
	if onDevice.Confidence > server.Confidence {
		higher = onDevice
	}

	if len(numsOnDevice) == 0 || len(numsServer) == 0 {
		metadata["numbers_match"] = false
		metadata["numbers_missing"] = true
		return m.useSingle(higher, StrategyContextAware, metadata)
	}

	if numbersAgree(numsOnDevice, numsServer, t.NumericTolerance) {
		metadata["numbers_match"] = true
		merged := m.useSingle(higher, StrategyContextAware, metadata)
		merged.Confidence = model.Clamp01(higher.Confidence + t.ComputationalBoost)
		return merged
	}

	// The paths computed different numbers: answer with explicit
	// uncertainty, naming the server's value as most likely.
	metadata["numbers_match"] = false
	text := fmt.Sprintf(
		"My calculations differ between sources. The most likely answer is %s, but I also got %s.",
		server.ResponseText, onDevice.ResponseText)

	merged := m.useSingle(server, StrategyContextAware, metadata)
	merged.ResponseText = text
	if merged.Confidence > t.UncertaintyCeiling {
		merged.Confidence = t.UncertaintyCeiling
	}
	return merged
}

// mergeConversational prefers a relatively much more confident result;
// otherwise concatenates both. Only the connective word is random.
func (m *Merger) mergeConversational(onDevice, server model.CandidateResult, metadata map[string]any) model.MergedResult {
	t := m.thresholds

	switch {
	case onDevice.Confidence > server.Confidence*(1+t.RelativeGap):
		return m.useSingle(onDevice, StrategyContextAware, metadata)
	case server.Confidence > onDevice.Confidence*(1+t.RelativeGap):
		return m.useSingle(server, StrategyContextAware, metadata)
	}

	primary, secondary := server, onDevice
	if onDevice.Confidence > server.Confidence {
		primary, secondary = onDevice, server
	}

	connective := connectives[m.rng.Intn(len(connectives))]
	text := fmt.Sprintf("%s %s %s", primary.ResponseText, connective, lowerFirst(secondary.ResponseText))

	merged := m.useSingle(primary, StrategyContextAware, metadata)
	merged.ResponseText = text
	merged.Confidence = model.Clamp01((onDevice.Confidence + server.Confidence) / 2)
	merged.Cost = onDevice.Cost + server.Cost
	merged.PrivacyScore = minFloat(onDevice.PrivacyScore, server.PrivacyScore)
	return merged
}

// wordSet lowercases and splits text into a set of words with punctuation
// trimmed.
func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func extractNumbers(text string) []float64 {
	var out []float64
	for _, match := range numberPattern.FindAllString(text, -1) {
		var v float64
		if _, err := fmt.Sscanf(match, "%f", &v); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func numbersAgree(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

// personalizedTokens extracts words adjacent to personal markers in the
// on-device response.
func personalizedTokens(text string) []string {
	markers := map[string]struct{}{"you": {}, "your": {}, "usually": {}, "typically": {}}
	words := strings.Fields(strings.ToLower(text))

	var tokens []string
	seen := make(map[string]struct{})
	for i, w := range words {
		w = strings.Trim(w, ".,!?;:\"'()")
		if _, isMarker := markers[w]; !isMarker {
			continue
		}
		for _, j := range []int{i - 1, i + 1} {
			if j < 0 || j >= len(words) {
				continue
			}
			neighbor := strings.Trim(words[j], ".,!?;:\"'()")
			if neighbor == "" {
				continue
			}
			if _, isMarker := markers[neighbor]; isMarker {
				continue
			}
			if _, dup := seen[neighbor]; dup {
				continue
			}
			seen[neighbor] = struct{}{}
			tokens = append(tokens, neighbor)
		}
	}
	return tokens
}

func firstAudio(primary, secondary model.CandidateResult) []byte {
	if len(primary.Audio) > 0 {
		return primary.Audio
	}
	return secondary.Audio
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
