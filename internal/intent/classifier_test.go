package intent

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hybrid-command-router/internal/model"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	t.Run("Time Query", func(t *testing.T) {
		got := c.Classify("what time is it", Hints{})
		if got.Intent != model.IntentTime {
			t.Fatalf("intent = %s, want %s", got.Intent, model.IntentTime)
		}
		if got.Confidence < MinConfidence {
			t.Errorf("confidence = %.3f, want >= %.2f", got.Confidence, MinConfidence)
		}
	})

	t.Run("Email Query", func(t *testing.T) {
		got := c.Classify("check my unread emails", Hints{})
		if got.Intent != model.IntentEmail {
			t.Fatalf("intent = %s, want %s", got.Intent, model.IntentEmail)
		}
	})

	t.Run("Calculation Query", func(t *testing.T) {
		got := c.Classify("calculate 10 times 2", Hints{})
		if got.Intent != model.IntentCalculation {
			t.Fatalf("intent = %s, want %s", got.Intent, model.IntentCalculation)
		}
		if got.Entities["numbers"] != "10,2" {
			t.Errorf("numbers entity = %q, want %q", got.Entities["numbers"], "10,2")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		got := c.Classify("   ", Hints{})
		if got.Intent != model.IntentUnknown {
			t.Errorf("intent = %s, want %s", got.Intent, model.IntentUnknown)
		}
		if got.Confidence != 0 {
			t.Errorf("confidence = %.3f, want 0", got.Confidence)
		}
	})

	t.Run("Unmatched Falls Back To General", func(t *testing.T) {
		got := c.Classify("xylophone zeppelin", Hints{})
		if got.Intent != model.IntentGeneral {
			t.Errorf("intent = %s, want %s", got.Intent, model.IntentGeneral)
		}
	})

	t.Run("Greeting Scores Exactly The Floor", func(t *testing.T) {
		got := c.Classify("hello", Hints{})
		if got.Intent != model.IntentGeneral {
			t.Fatalf("intent = %s, want %s", got.Intent, model.IntentGeneral)
		}
		if math.Abs(got.Confidence-MinConfidence) > 1e-9 {
			t.Errorf("confidence = %.3f, want %.2f", got.Confidence, MinConfidence)
		}
	})

	t.Run("Relative Date Entity", func(t *testing.T) {
		got := c.Classify("what day is it tomorrow", Hints{})
		if got.Entities["relative_date"] != "tomorrow" {
			t.Errorf("relative_date = %q, want %q", got.Entities["relative_date"], "tomorrow")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := c.Classify("schedule a meeting tomorrow", Hints{})
		b := c.Classify("schedule a meeting tomorrow", Hints{})
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("repeated classification differs (-first +second):\n%s", diff)
		}
		if a.Intent != model.IntentCalendar {
			t.Errorf("intent = %s, want %s", a.Intent, model.IntentCalendar)
		}
	})

	t.Run("Alternatives Capped And Ordered", func(t *testing.T) {
		got := c.Classify("remind me to check the weather and my email schedule", Hints{})
		if len(got.Alternatives) > 2 {
			t.Fatalf("alternatives = %d, want <= 2", len(got.Alternatives))
		}
		for i := 1; i < len(got.Alternatives); i++ {
			if got.Alternatives[i-1].Score < got.Alternatives[i].Score {
				t.Errorf("alternatives not sorted: %v", got.Alternatives)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"What's the WEATHER?", "what is the weather"},
		{"  Hello,   world!  ", "hello world"},
		{"what's 2.5 plus 3", "what is 2.5 plus 3"},
	}
	for _, tc := range cases {
		if got := normalize(tc.in); got != tc.want {
			t.Errorf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("please remind me about the meeting")
	want := []string{"remind", "meeting"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
	}
}
