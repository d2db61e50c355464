package model

import "testing"

func TestIntentCapabilities(t *testing.T) {
	offline := []Intent{IntentTime, IntentCalculation, IntentDeviceControl, IntentGeneral}
	for _, i := range offline {
		if !i.SupportsOfflineProcessing() {
			t.Errorf("%s.SupportsOfflineProcessing() = false, want true", i)
		}
		if i.RequiresServerProcessing() {
			t.Errorf("%s.RequiresServerProcessing() = true, want false", i)
		}
	}

	serverBound := []Intent{IntentCalendar, IntentEmail, IntentTask, IntentWeather}
	for _, i := range serverBound {
		if i.SupportsOfflineProcessing() {
			t.Errorf("%s.SupportsOfflineProcessing() = true, want false", i)
		}
		if !i.RequiresServerProcessing() {
			t.Errorf("%s.RequiresServerProcessing() = false, want true", i)
		}
	}

	if IntentUnknown.SupportsOfflineProcessing() || IntentUnknown.RequiresServerProcessing() {
		t.Errorf("unknown intent must have no capabilities")
	}
}

func TestIntentPrivacySensitive(t *testing.T) {
	for _, i := range []Intent{IntentEmail, IntentCalendar, IntentTask} {
		if !i.PrivacySensitive() {
			t.Errorf("%s.PrivacySensitive() = false, want true", i)
		}
	}
	for _, i := range []Intent{IntentTime, IntentWeather, IntentGeneral, IntentCalculation} {
		if i.PrivacySensitive() {
			t.Errorf("%s.PrivacySensitive() = true, want false", i)
		}
	}
}

func TestIntentValid(t *testing.T) {
	if !IntentTime.Valid() {
		t.Errorf("time must be a valid intent")
	}
	if Intent("made_up").Valid() {
		t.Errorf("arbitrary string must not be valid")
	}
}
