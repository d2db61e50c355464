package offline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hybrid-command-router/internal/model"
)

func TestCalculationCanHandle(t *testing.T) {
	h := NewCalculationHandler()

	cases := []struct {
		text string
		want bool
	}{
		{"calculate 10 times 2", true},
		{"what is 2 plus 2", true},
		{"square root of 16", true},
		{"calculate something", false}, // no numbers
		{"10 20 30", false},            // no operator keyword
		{"what time is it", false},
	}
	for _, tc := range cases {
		if got := h.CanHandle(tc.text); got != tc.want {
			t.Errorf("CanHandle(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCalculationProcess(t *testing.T) {
	h := NewCalculationHandler()
	ctx := context.Background()

	cases := []struct {
		text string
		want string
	}{
		{"calculate 10 times 2", "The result is 20"},
		{"what is 2 plus 2", "The result is 4"},
		{"what is 10 minus 4.5", "The result is 5.5"},
		{"what is 9 divided by 2", "The result is 4.5"},
		{"what is 50 percent of 80", "The result is 40"},
		{"what is 2 to the power of 10", "The result is 1024"},
		{"square root of 16", "The result is 4"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := h.Process(ctx, tc.text, model.CommandContext{})
			if err != nil {
				t.Fatalf("Process(%q): %v", tc.text, err)
			}
			if got.ResponseText != tc.want {
				t.Errorf("Process(%q) = %q, want %q", tc.text, got.ResponseText, tc.want)
			}
			if got.Confidence != 1.0 {
				t.Errorf("confidence = %v, want 1.0", got.Confidence)
			}
			if got.Source != model.SourceOnDevice {
				t.Errorf("source = %s, want on_device", got.Source)
			}
		})
	}
}

func TestCalculationProcessErrors(t *testing.T) {
	h := NewCalculationHandler()
	ctx := context.Background()

	cases := []struct {
		text   string
		reason string
	}{
		{"what is 10 divided by 0", "division by zero"},
		{"calculate 5 plus", "insufficient numbers"},
		{"square root of -4", "square root of a negative number"},
	}
	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			_, err := h.Process(ctx, tc.text, model.CommandContext{})
			if err == nil {
				t.Fatalf("Process(%q): expected error", tc.text)
			}
			var perr *ProcessError
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *ProcessError", err)
			}
			if !strings.Contains(perr.Reason, tc.reason) {
				t.Errorf("reason = %q, want %q", perr.Reason, tc.reason)
			}
		})
	}
}

func TestFormatNumberLocale(t *testing.T) {
	if got := formatNumber(4.5, "en-US"); got != "4.5" {
		t.Errorf("en-US: got %q", got)
	}
	if got := formatNumber(4.5, "de-DE"); got != "4,5" {
		t.Errorf("de-DE: got %q", got)
	}
	if got := formatNumber(20, ""); got != "20" {
		t.Errorf("default: got %q", got)
	}
}
