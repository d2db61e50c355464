package offline

import (
	"context"
	"strings"

	"hybrid-command-router/internal/model"
)

// EmailStubHandler always declines. It exists so an offline route for
// email has somewhere to land that tells the user a live connection is
// needed, instead of presenting stale cached mail as current.
type EmailStubHandler struct{}

func NewEmailStubHandler() *EmailStubHandler { return &EmailStubHandler{} }

func (h *EmailStubHandler) Intent() model.Intent { return model.IntentEmail }

var emailKeywords = []string{"email", "inbox", "unread", "mail", "message"}

func (h *EmailStubHandler) CanHandle(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range emailKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (h *EmailStubHandler) Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error) {
	return model.CandidateResult{
		ResponseText: "I can't check your email without a connection. Please connect to the internet so I can show you current messages.",
		Confidence:   0.9,
		Cost:         0,
		PrivacyScore: 1.0,
		Source:       model.SourceOnDevice,
	}, nil
}
