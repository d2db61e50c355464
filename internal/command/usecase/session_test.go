package usecase

import (
	"fmt"
	"testing"
	"time"

	"hybrid-command-router/internal/model"
)

func TestSessionStoreRemember(t *testing.T) {
	s := newSessionStore(time.Minute)
	now := time.Now()

	s.remember("s1", model.Exchange{UserText: "what time is it", Intent: model.IntentTime, At: now})
	s.remember("s1", model.Exchange{UserText: "calculate 2 plus 2", Intent: model.IntentCalculation, At: now})

	if got := s.priorIntent("s1"); got != model.IntentCalculation {
		t.Errorf("priorIntent = %s, want calculation", got)
	}
	if got := len(s.history("s1")); got != 2 {
		t.Errorf("history length = %d, want 2", got)
	}
}

func TestSessionStoreHistoryCapped(t *testing.T) {
	s := newSessionStore(time.Minute)
	now := time.Now()

	for i := 0; i < maxSessionHistory+5; i++ {
		s.remember("s1", model.Exchange{UserText: fmt.Sprintf("command %d", i), At: now})
	}

	history := s.history("s1")
	if len(history) != maxSessionHistory {
		t.Fatalf("history length = %d, want %d", len(history), maxSessionHistory)
	}
	if history[0].UserText != "command 5" {
		t.Errorf("oldest kept exchange = %q, want the earliest within the cap", history[0].UserText)
	}
}

func TestSessionStoreEmptySessionID(t *testing.T) {
	s := newSessionStore(time.Minute)
	s.remember("", model.Exchange{UserText: "anonymous", At: time.Now()})

	if got := len(s.history("")); got != 0 {
		t.Errorf("history for empty session = %d entries, want none", got)
	}
	if got := s.priorIntent(""); got != model.IntentUnknown {
		t.Errorf("priorIntent for empty session = %s, want unknown", got)
	}
}

func TestSessionStoreHistoryIsCopy(t *testing.T) {
	s := newSessionStore(time.Minute)
	s.remember("s1", model.Exchange{UserText: "original", At: time.Now()})

	history := s.history("s1")
	history[0].UserText = "mutated"

	if got := s.history("s1")[0].UserText; got != "original" {
		t.Errorf("stored exchange = %q, caller mutation leaked in", got)
	}
}
