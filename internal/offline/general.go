package offline

import (
	"context"
	"strings"

	"hybrid-command-router/internal/model"
)

// cannedResponses is the fixed phrase lookup for chit-chat, checked in
// order so overlapping phrases resolve deterministically.
var cannedResponses = []struct {
	phrase string
	reply  string
}{
	{"how are you", "I'm doing well, thanks for asking. How can I help?"},
	{"thank you", "You're welcome!"},
	{"thanks", "You're welcome!"},
	{"tell me a joke", "Why do programmers prefer dark mode? Because light attracts bugs."},
	{"help", "You can ask me about the time, simple calculations, your device, the weather, your calendar, or your email."},
	{"who are you", "I'm your assistant. I answer what I can on this device and reach out to the server for the rest."},
}

var greetingPrefixes = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}

const defaultGeneralReply = "I'm not sure about that one. Try asking me about the time, a calculation, or your device."

// GeneralHandler serves greetings and canned chit-chat without network.
type GeneralHandler struct{}

func NewGeneralHandler() *GeneralHandler { return &GeneralHandler{} }

func (h *GeneralHandler) Intent() model.Intent { return model.IntentGeneral }

// CanHandle is always true: general is the catch-all, and the default
// reply is itself a valid answer.
func (h *GeneralHandler) CanHandle(text string) bool { return true }

func (h *GeneralHandler) Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error) {
	lower := strings.TrimSpace(strings.ToLower(text))

	if reply, ok := lookupCanned(lower); ok {
		return generalResult(reply, 0.8), nil
	}

	if isGreeting(lower) {
		return generalResult(greetingFor(cctx.TimeOfDay), 0.8), nil
	}

	return generalResult(defaultGeneralReply, 0.4), nil
}

func lookupCanned(lower string) (string, bool) {
	for _, c := range cannedResponses {
		if strings.Contains(lower, c.phrase) {
			return c.reply, true
		}
	}
	return "", false
}

func isGreeting(lower string) bool {
	for _, p := range greetingPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func greetingFor(bucket model.TimeOfDay) string {
	switch bucket {
	case model.TimeOfDayMorning:
		return "Good morning! What can I do for you?"
	case model.TimeOfDayAfternoon:
		return "Good afternoon! What can I do for you?"
	case model.TimeOfDayEvening:
		return "Good evening! What can I do for you?"
	default:
		return "Hello! What can I do for you?"
	}
}

func generalResult(reply string, confidence float64) model.CandidateResult {
	return model.CandidateResult{
		ResponseText: reply,
		Confidence:   confidence,
		Cost:         0,
		PrivacyScore: 1.0,
		Source:       model.SourceOnDevice,
	}
}
