package offline

import (
	"context"
	"fmt"
	"strings"

	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/model"
)

// DeviceControlHandler reports live device state. It is strictly
// read-only: mutating controls (flashlight, brightness, volume changes)
// are intentionally not implemented, so a routed "turn on" request still
// only gets a status sentence back.
type DeviceControlHandler struct {
	reader device.Reader
}

func NewDeviceControlHandler(reader device.Reader) *DeviceControlHandler {
	return &DeviceControlHandler{reader: reader}
}

func (h *DeviceControlHandler) Intent() model.Intent { return model.IntentDeviceControl }

var deviceKeywords = []string{"battery", "brightness", "volume", "storage", "device"}

func (h *DeviceControlHandler) CanHandle(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range deviceKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (h *DeviceControlHandler) Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error) {
	lower := strings.ToLower(text)

	var reply string
	switch {
	case strings.Contains(lower, "battery"):
		reply = fmt.Sprintf("Your battery is at %d%%.", int(h.reader.BatteryLevel()*100))
		if h.reader.IsLowPowerMode() {
			reply += " Low power mode is on."
		}
	case strings.Contains(lower, "brightness"):
		reply = fmt.Sprintf("Screen brightness is at %d%%.", h.reader.BrightnessPercent())
	case strings.Contains(lower, "volume"):
		reply = fmt.Sprintf("Volume is at %d%%.", h.reader.VolumePercent())
	case strings.Contains(lower, "storage"):
		reply = fmt.Sprintf("You have %.1f GB of storage available.", h.reader.StorageAvailableGB())
	default:
		network := "online"
		if h.reader.IsNetworkUnavailable() {
			network = "offline"
		}
		reply = fmt.Sprintf("You're using %s, battery at %d%%, currently %s.",
			h.reader.ModelName(), int(h.reader.BatteryLevel()*100), network)
	}

	return model.CandidateResult{
		ResponseText: reply,
		Confidence:   0.9,
		Cost:         0,
		PrivacyScore: 1.0,
		Source:       model.SourceOnDevice,
	}, nil
}
