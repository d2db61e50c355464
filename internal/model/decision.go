package model

// RouteKind names the four execution paths.
type RouteKind string

const (
	RouteOffline  RouteKind = "offline"
	RouteOnDevice RouteKind = "on_device"
	RouteServer   RouteKind = "server"
	RouteHybrid   RouteKind = "hybrid"
)

// Route is the tagged execution-path variant. Only the fields for the
// matching kind are meaningful: Cached for offline, HandlerID for
// on-device, OnDeviceFirst for hybrid.
type Route struct {
	Kind          RouteKind
	Cached        bool
	HandlerID     Intent
	OnDeviceFirst bool
}

// ProcessingDecision is the routing outcome for one command. A hybrid
// decision always carries a non-nil Fallback. Explanation is mandatory,
// deterministic, and distinct per decision branch.
type ProcessingDecision struct {
	Route           Route
	Fallback        *Route
	PrivacyRequired bool
	Explanation     string
}
