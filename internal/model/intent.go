package model

// Intent is a discrete category describing what the user wants.
type Intent string

const (
	IntentCalendar      Intent = "calendar"
	IntentEmail         Intent = "email"
	IntentTask          Intent = "task"
	IntentWeather       Intent = "weather"
	IntentGeneral       Intent = "general"
	IntentUnknown       Intent = "unknown"
	IntentTime          Intent = "time"
	IntentCalculation   Intent = "calculation"
	IntentDeviceControl Intent = "device_control"
)

// AllIntents is the fixed category order. Classification ties resolve to
// whichever intent appears first here, so the order is part of the contract
// and must not be reshuffled.
var AllIntents = []Intent{
	IntentCalendar,
	IntentEmail,
	IntentTask,
	IntentWeather,
	IntentGeneral,
	IntentUnknown,
	IntentTime,
	IntentCalculation,
	IntentDeviceControl,
}

// intentCapabilities holds the static capability flags per intent,
// fixed at build time.
type intentCapabilities struct {
	supportsOffline bool
	requiresServer  bool
}

var capabilities = map[Intent]intentCapabilities{
	IntentCalendar:      {supportsOffline: false, requiresServer: true},
	IntentEmail:         {supportsOffline: false, requiresServer: true},
	IntentTask:          {supportsOffline: false, requiresServer: true},
	IntentWeather:       {supportsOffline: false, requiresServer: true},
	IntentGeneral:       {supportsOffline: true, requiresServer: false},
	IntentUnknown:       {supportsOffline: false, requiresServer: false},
	IntentTime:          {supportsOffline: true, requiresServer: false},
	IntentCalculation:   {supportsOffline: true, requiresServer: false},
	IntentDeviceControl: {supportsOffline: true, requiresServer: false},
}

// SupportsOfflineProcessing reports whether the intent can be answered
// without any network.
func (i Intent) SupportsOfflineProcessing() bool {
	return capabilities[i].supportsOffline
}

// RequiresServerProcessing reports whether the intent needs the remote
// processor for a current answer.
func (i Intent) RequiresServerProcessing() bool {
	return capabilities[i].requiresServer
}

// Valid reports whether i is one of the closed intent set.
func (i Intent) Valid() bool {
	_, ok := capabilities[i]
	return ok
}

// PrivacySensitive reports whether results for this intent may expose
// personal data and should stay on the device when possible.
func (i Intent) PrivacySensitive() bool {
	switch i {
	case IntentEmail, IntentCalendar, IntentTask:
		return true
	}
	return false
}
