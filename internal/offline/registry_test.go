package offline

import (
	"context"
	"errors"
	"testing"

	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/pkg/datemath"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	reg, err := NewRegistry(Deps{
		Device: device.NewStaticReader(device.StaticReader{Battery: 0.75}),
		Dates:  dates,
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestRegistryForIntent(t *testing.T) {
	reg := newTestRegistry(t)

	for _, in := range []model.Intent{
		model.IntentTime,
		model.IntentCalculation,
		model.IntentDeviceControl,
		model.IntentGeneral,
		model.IntentEmail,
	} {
		h, err := reg.ForIntent(in)
		if err != nil {
			t.Errorf("ForIntent(%s): %v", in, err)
			continue
		}
		if h.Intent() != in {
			t.Errorf("handler for %s reports intent %s", in, h.Intent())
		}
	}

	if _, err := reg.ForIntent(model.IntentCalendar); !errors.Is(err, ErrNoHandler) {
		t.Errorf("ForIntent(calendar) = %v, want ErrNoHandler", err)
	}
}

func TestRegistryIntentsStableOrder(t *testing.T) {
	reg := newTestRegistry(t)
	first := reg.Intents()
	for i := 0; i < 5; i++ {
		if got := reg.Intents(); len(got) != len(first) {
			t.Fatalf("intent count changed: %d vs %d", len(got), len(first))
		} else {
			for j := range got {
				if got[j] != first[j] {
					t.Fatalf("intent order changed at %d: %s vs %s", j, got[j], first[j])
				}
			}
		}
	}
}

func TestDeviceControlHandler(t *testing.T) {
	reader := device.NewStaticReader(device.StaticReader{
		Battery:       0.75,
		Brightness:    40,
		Volume:        65,
		StorageFreeGB: 12.5,
		Model:         "test-device",
	})
	h := NewDeviceControlHandler(reader)
	ctx := context.Background()

	cases := []struct {
		text string
		want string
	}{
		{"what's my battery level", "Your battery is at 75%."},
		{"how bright is my screen brightness", "Screen brightness is at 40%."},
		{"what's the volume at", "Volume is at 65%."},
		{"how much storage do I have", "You have 12.5 GB of storage available."},
	}
	for _, tc := range cases {
		got, err := h.Process(ctx, tc.text, model.CommandContext{})
		if err != nil {
			t.Fatalf("Process(%q): %v", tc.text, err)
		}
		if got.ResponseText != tc.want {
			t.Errorf("Process(%q) = %q, want %q", tc.text, got.ResponseText, tc.want)
		}
	}

	t.Run("Low Power Suffix", func(t *testing.T) {
		lp := device.NewStaticReader(device.StaticReader{Battery: 0.2, LowPower: true})
		got, err := NewDeviceControlHandler(lp).Process(ctx, "battery", model.CommandContext{})
		if err != nil {
			t.Fatal(err)
		}
		if got.ResponseText != "Your battery is at 20%. Low power mode is on." {
			t.Errorf("got %q", got.ResponseText)
		}
	})
}

func TestEmailStub(t *testing.T) {
	h := NewEmailStubHandler()
	if !h.CanHandle("check my unread emails") {
		t.Error("mail keywords must match")
	}
	got, err := h.Process(context.Background(), "check my email", model.CommandContext{})
	if err != nil {
		t.Fatal(err)
	}
	if got.ResponseText == "" {
		t.Error("stub must return a decline sentence")
	}
	if got.Source != model.SourceOnDevice {
		t.Errorf("source = %s, want on_device", got.Source)
	}
}
