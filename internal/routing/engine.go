// Package routing selects the cheapest adequate execution path for a
// classified command. The engine is a pure function of its inputs: no I/O,
// no mutation, every branch emits a distinct deterministic explanation.
package routing

import (
	"fmt"

	"hybrid-command-router/internal/model"
)

// CacheProbe is a read-only view of the offline answer cache. Contains
// must not mutate recency or any other cache state.
type CacheProbe interface {
	Contains(query string) bool
}

// noProbe is used when no cache is wired in; rule 1 then never fires.
type noProbe struct{}

func (noProbe) Contains(string) bool { return false }

// Engine applies the fixed top-down decision policy.
type Engine struct {
	cache CacheProbe
}

// NewEngine creates a routing engine. probe may be nil.
func NewEngine(probe CacheProbe) *Engine {
	if probe == nil {
		probe = noProbe{}
	}
	return &Engine{cache: probe}
}

// Route evaluates the decision policy top-down; the first matching rule
// wins. query is the normalized command text used for cache lookup.
func (e *Engine) Route(query string, cls model.ClassificationResult, device model.DeviceContext, settings model.UserSettings) model.ProcessingDecision {
	privacy := cls.Intent.PrivacySensitive() || settings.OfflineFirst

	// Rule 1: a cached offline answer exists for this exact query.
	if cls.Intent.SupportsOfflineProcessing() && e.cache.Contains(query) {
		return model.ProcessingDecision{
			Route:           model.Route{Kind: model.RouteOffline, Cached: true, HandlerID: cls.Intent},
			PrivacyRequired: privacy,
			Explanation:     "offline: cached answer available for this exact query",
		}
	}

	// Rule 2: confidence below the user's threshold → hybrid, on-device first.
	if cls.Confidence < settings.ConfidenceThreshold {
		fallback := model.Route{Kind: model.RouteServer}
		return model.ProcessingDecision{
			Route:           model.Route{Kind: model.RouteHybrid, OnDeviceFirst: true, HandlerID: cls.Intent},
			Fallback:        &fallback,
			PrivacyRequired: privacy,
			Explanation: fmt.Sprintf("hybrid: confidence %.2f below threshold %.2f, on-device first with server fallback",
				cls.Confidence, settings.ConfidenceThreshold),
		}
	}

	// Rule 3: constrained device. Offline-capable intents go on-device;
	// others are still attempted on-device, expected to fail fast, and the
	// caller must treat that failure as terminal.
	if device.IsLowPowerMode || device.IsNetworkUnavailable {
		constraint := "network unavailable"
		if device.IsLowPowerMode {
			constraint = "low power mode"
		}
		if cls.Intent.SupportsOfflineProcessing() {
			return model.ProcessingDecision{
				Route:           model.Route{Kind: model.RouteOnDevice, HandlerID: cls.Intent},
				PrivacyRequired: privacy,
				Explanation:     fmt.Sprintf("on-device: %s and intent supports offline processing", constraint),
			}
		}
		return model.ProcessingDecision{
			Route:           model.Route{Kind: model.RouteOnDevice, HandlerID: cls.Intent},
			PrivacyRequired: privacy,
			Explanation:     fmt.Sprintf("on-device: %s, intent has no offline support, failure is terminal", constraint),
		}
	}

	// Rule 4: the intent needs the server and confidence is adequate.
	if cls.Intent.RequiresServerProcessing() {
		return model.ProcessingDecision{
			Route:           model.Route{Kind: model.RouteServer},
			PrivacyRequired: privacy,
			Explanation:     "server: intent requires server processing and confidence meets threshold",
		}
	}

	// Rule 5: default on-device with a server fallback.
	fallback := model.Route{Kind: model.RouteServer}
	return model.ProcessingDecision{
		Route:           model.Route{Kind: model.RouteOnDevice, HandlerID: cls.Intent},
		Fallback:        &fallback,
		PrivacyRequired: privacy,
		Explanation:     "on-device: default route with server fallback",
	}
}
