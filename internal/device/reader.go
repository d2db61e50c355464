// Package device exposes read-only access to device state. The engine
// never mutates device state through this interface.
package device

import "hybrid-command-router/internal/model"

// Reader is the device-info collaborator consumed by the engine.
type Reader interface {
	BatteryLevel() float64 // 0..1
	IsLowPowerMode() bool
	IsNetworkUnavailable() bool
	Locale() string
	BrightnessPercent() int
	VolumePercent() int
	ModelName() string
	StorageAvailableGB() float64
}

// Snapshot captures the routing-relevant device fields as an immutable
// context value.
func Snapshot(r Reader) model.DeviceContext {
	return model.DeviceContext{
		BatteryLevel:         r.BatteryLevel(),
		IsLowPowerMode:       r.IsLowPowerMode(),
		IsNetworkUnavailable: r.IsNetworkUnavailable(),
		Locale:               r.Locale(),
	}
}
