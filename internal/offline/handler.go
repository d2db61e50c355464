// Package offline holds the capability handlers that can answer certain
// intents without any network, and the closed registry that maps intents
// to them. The handler set is fixed at build time.
package offline

import (
	"context"
	"errors"
	"fmt"

	"hybrid-command-router/internal/model"
)

// Handler answers one intent category without network access.
type Handler interface {
	// Intent returns the category this handler serves.
	Intent() model.Intent

	// CanHandle is a fast, synchronous, pattern-only check. It must not
	// perform I/O.
	CanHandle(text string) bool

	// Process produces a candidate result. May fail; the caller must not
	// retry with a different handler.
	Process(ctx context.Context, text string, cctx model.CommandContext) (model.CandidateResult, error)
}

// ErrNoHandler reports that no handler is registered for the intent
// selected by the router.
var ErrNoHandler = errors.New("no offline handler for intent")

// ProcessError reports that a handler accepted the text but failed to
// process it (e.g. an arithmetic error).
type ProcessError struct {
	Intent model.Intent
	Text   string
	Reason string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("offline handler %s cannot process %q: %s", e.Intent, e.Text, e.Reason)
}
