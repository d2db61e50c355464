package offline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hybrid-command-router/internal/model"
	"hybrid-command-router/pkg/datemath"
)

// timePhrases is the fixed phrase set the time/date handler matches on.
var timePhrases = []string{
	"what time is it",
	"current time",
	"time is it",
	"what day is it",
	"what date",
	"what is the date",
	"today's date",
	"what day",
}

// TimeHandler answers time and date queries from the wall clock alone.
// No numeric computation happens here.
type TimeHandler struct {
	clock func() time.Time
	dates *datemath.Parser
}

func NewTimeHandler(clock func() time.Time, dates *datemath.Parser) *TimeHandler {
	return &TimeHandler{clock: clock, dates: dates}
}

func (h *TimeHandler) Intent() model.Intent { return model.IntentTime }

func (h *TimeHandler) CanHandle(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range timePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (h *TimeHandler) Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error) {
	lower := strings.ToLower(text)
	now := h.clock()

	var reply string
	switch {
	case strings.Contains(lower, "day") || strings.Contains(lower, "date"):
		if resolved, phrase, ok := h.dates.Resolve(lower, now); ok && phrase != "today" {
			reply = fmt.Sprintf("%s is %s.", capitalize(phrase), formatDate(resolved, cctx.Device.Locale))
			break
		}
		reply = fmt.Sprintf("Today is %s.", formatDate(now, cctx.Device.Locale))
	default:
		reply = fmt.Sprintf("It's %s.", formatClock(now, cctx.Device.Locale))
	}

	return model.CandidateResult{
		ResponseText: reply,
		Confidence:   0.95,
		Cost:         0,
		PrivacyScore: 1.0,
		Source:       model.SourceOnDevice,
	}, nil
}

// formatClock applies locale clock conventions: 12-hour for US English,
// 24-hour otherwise.
func formatClock(t time.Time, locale string) string {
	if strings.EqualFold(locale, "en-US") || locale == "" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// formatDate applies locale date order: month-first for US English,
// day-first otherwise.
func formatDate(t time.Time, locale string) string {
	if strings.EqualFold(locale, "en-US") || locale == "" {
		return t.Format("Monday, January 2, 2006")
	}
	return t.Format("Monday, 2 January 2006")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
