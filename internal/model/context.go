package model

import "time"

// Scope carries the caller identity for a request.
type Scope struct {
	UserID    string
	SessionID string
}

// DeviceContext is a read-only snapshot of device state taken when a
// command arrives.
type DeviceContext struct {
	BatteryLevel         float64 // 0..1
	IsLowPowerMode       bool
	IsNetworkUnavailable bool
	Locale               string
}

// UserSettings are the ambient preferences that influence routing.
// Passed explicitly into the decision engine; never read from globals.
type UserSettings struct {
	ConfidenceThreshold float64
	OfflineFirst        bool
}

// TimeOfDay buckets the wall clock for context hints.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// BucketForTime maps a wall-clock time to its TimeOfDay bucket.
func BucketForTime(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return TimeOfDayMorning
	case h >= 12 && h < 17:
		return TimeOfDayAfternoon
	case h >= 17 && h < 22:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// Exchange is one completed turn kept in session memory.
type Exchange struct {
	UserText     string
	ResponseText string
	Intent       Intent
	At           time.Time
}

// CommandContext is the strongly-typed context bundle threaded through the
// pipeline. Unknown fields from callers are dropped at the delivery layer;
// the core never consumes open maps.
type CommandContext struct {
	TimeOfDay   TimeOfDay
	PriorIntent Intent
	History     []Exchange
	Device      DeviceContext
	Settings    UserSettings
}
