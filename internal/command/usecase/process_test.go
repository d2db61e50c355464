package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"hybrid-command-router/config"
	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/intent"
	"hybrid-command-router/internal/merge"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/internal/offline"
	"hybrid-command-router/internal/stats"
	"hybrid-command-router/pkg/datemath"
	pkgLog "hybrid-command-router/pkg/log"
	"hybrid-command-router/pkg/remote"
)

type fakeSender struct {
	resp  *remote.Response
	err   error
	calls int
	last  *remote.Request
}

func (f *fakeSender) SendCommand(ctx context.Context, req *remote.Request) (*remote.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestUseCase(t *testing.T, sender remoteSender, speech transcriber, threshold float64, dev device.StaticReader) *implUseCase {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("date parser: %v", err)
	}
	reader := device.NewStaticReader(dev)
	registry, err := offline.NewRegistry(offline.Deps{
		Device: reader,
		Dates:  dates,
		Clock:  func() time.Time { return time.Date(2026, 9, 2, 15, 4, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	cfg := config.EngineConfig{
		ConfidenceThreshold: threshold,
		HybridTimeout:       2 * time.Second,
		ErrorResetDelay:     20 * time.Millisecond,
		AnswerCacheSize:     16,
		AnswerCacheTTL:      time.Minute,
		SessionTTL:          time.Minute,
	}
	return New(
		pkgLog.NewNop(),
		intent.NewClassifier(),
		registry,
		merge.NewMerger(merge.WithPhrasingSeed(1)),
		stats.NewTracker(nil),
		reader,
		sender,
		speech,
		cfg,
	)
}

func testScope() model.Scope {
	return model.Scope{UserID: "user-1", SessionID: "session-1"}
}

func TestProcessTextCachedOfflineRoute(t *testing.T) {
	sender := &fakeSender{err: errors.New("must not be called")}
	uc := newTestUseCase(t, sender, nil, 0.2, device.StaticReader{})

	text := "calculate 10 plus 5"
	uc.answers.Add(text, model.CandidateResult{
		ResponseText: "The result is 15",
		Confidence:   1.0,
		Source:       model.SourceOnDevice,
	})

	out, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: text})
	if err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}
	if out.Method != model.MethodOffline {
		t.Errorf("method = %s, want offline", out.Method)
	}
	if !out.WasOffline {
		t.Errorf("WasOffline = false, want true")
	}
	if out.ResponseText != "The result is 15" {
		t.Errorf("response = %q", out.ResponseText)
	}
	if sender.calls != 0 {
		t.Errorf("server called %d times for a cached answer", sender.calls)
	}

	wantTransitions := []model.StateTransition{
		{From: model.StateIdle, To: model.StateClassifying},
		{From: model.StateClassifying, To: model.StateRouting},
		{From: model.StateRouting, To: model.StateExecuting},
		{From: model.StateExecuting, To: model.StateCompleted},
		{From: model.StateCompleted, To: model.StateIdle},
	}
	if diff := cmp.Diff(wantTransitions, out.Transitions); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}

	if got := uc.Statistics(context.Background()); got.TotalCommands != 1 || got.OfflineCommands != 1 {
		t.Errorf("statistics = %+v, want one offline command", got)
	}
}

func TestProcessTextOnDeviceWhenNetworkDown(t *testing.T) {
	sender := &fakeSender{err: errors.New("must not be called")}
	uc := newTestUseCase(t, sender, nil, 0.2, device.StaticReader{NetworkDown: true})

	out, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "what time is it"})
	if err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}
	if out.Method != model.MethodOnDevice {
		t.Errorf("method = %s, want on_device", out.Method)
	}
	if out.ResponseText != "It's 3:04 PM." {
		t.Errorf("response = %q", out.ResponseText)
	}
	if !out.WasOffline {
		t.Errorf("WasOffline = false, want true")
	}
	if sender.calls != 0 {
		t.Errorf("server called with network down")
	}
}

func TestProcessTextServerRoute(t *testing.T) {
	sender := &fakeSender{resp: &remote.Response{
		Text:       "You have two unread emails.",
		Success:    true,
		Confidence: 0.9,
		CostUnits:  1.5,
	}}
	uc := newTestUseCase(t, sender, nil, 0.2, device.StaticReader{})

	out, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "check my email inbox"})
	if err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}
	if out.Method != model.MethodServer {
		t.Errorf("method = %s, want server", out.Method)
	}
	if out.WasOffline {
		t.Errorf("WasOffline = true for a server answer")
	}
	if out.ResponseText != "You have two unread emails." {
		t.Errorf("response = %q", out.ResponseText)
	}
	if sender.last == nil || sender.last.SessionID != "session-1" {
		t.Errorf("request = %+v, want session forwarded", sender.last)
	}
}

func TestProcessTextServerFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("all endpoints down")}
	uc := newTestUseCase(t, sender, nil, 0.2, device.StaticReader{})

	_, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "check my email inbox"})
	if !errors.Is(err, command.ErrServerProcessingFailed) {
		t.Fatalf("error = %v, want ErrServerProcessingFailed", err)
	}

	var ierr *command.IntentError
	if !errors.As(err, &ierr) {
		t.Fatalf("error = %T, want *IntentError", err)
	}
	if ierr.Intent != model.IntentEmail {
		t.Errorf("intent = %s, want email", ierr.Intent)
	}
	if got := uc.State(); got != model.StateError {
		t.Errorf("state = %s, want error", got)
	}
}

func TestProcessTextHybridMerges(t *testing.T) {
	sender := &fakeSender{resp: &remote.Response{
		Text:       "The result is 15",
		Success:    true,
		Confidence: 0.8,
	}}
	// Threshold above any classifier score forces the hybrid route.
	uc := newTestUseCase(t, sender, nil, 0.99, device.StaticReader{})

	out, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "calculate 10 plus 5"})
	if err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}
	if out.Method != model.MethodHybrid {
		t.Errorf("method = %s, want hybrid", out.Method)
	}
	if out.WasOffline {
		t.Errorf("WasOffline = true for hybrid")
	}
	if out.ResponseText != "The result is 15" {
		t.Errorf("response = %q", out.ResponseText)
	}
	if out.MergeStrategy == "" {
		t.Errorf("merge strategy empty for hybrid")
	}
	if sender.calls != 1 {
		t.Errorf("server calls = %d, want 1", sender.calls)
	}
}

func TestProcessTextHybridSurvivesServerFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("timeout")}
	uc := newTestUseCase(t, sender, nil, 0.99, device.StaticReader{})

	out, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "calculate 10 plus 5"})
	if err != nil {
		t.Fatalf("ProcessText() error = %v, want on-device answer to survive", err)
	}
	if out.ResponseText != "The result is 15" {
		t.Errorf("response = %q", out.ResponseText)
	}
	if out.MergeStrategy != merge.StrategyUseOnDevice {
		t.Errorf("strategy = %s, want %s", out.MergeStrategy, merge.StrategyUseOnDevice)
	}
}

func TestProcessTextHybridBothBranchesFail(t *testing.T) {
	sender := &fakeSender{err: errors.New("all endpoints down")}
	uc := newTestUseCase(t, sender, nil, 0.99, device.StaticReader{})

	// Calendar has no offline handler, so both branches fail.
	_, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "schedule a meeting tomorrow"})
	if !errors.Is(err, command.ErrHybridProcessingFailed) {
		t.Fatalf("error = %v, want ErrHybridProcessingFailed", err)
	}
	if got := uc.State(); got != model.StateError {
		t.Errorf("state = %s, want error", got)
	}
}

func TestProcessTextRejectedWhileBusy(t *testing.T) {
	uc := newTestUseCase(t, &fakeSender{}, nil, 0.2, device.StaticReader{})

	uc.mu.Lock()
	uc.state = model.StateExecuting
	uc.mu.Unlock()

	_, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "what time is it"})
	if !errors.Is(err, command.ErrCommandInProgress) {
		t.Fatalf("error = %v, want ErrCommandInProgress", err)
	}
}

func TestProcessAudio(t *testing.T) {
	t.Run("Transcribes Then Processes", func(t *testing.T) {
		speech := &fakeTranscriber{text: "what time is it"}
		uc := newTestUseCase(t, &fakeSender{}, speech, 0.2, device.StaticReader{NetworkDown: true})

		out, err := uc.ProcessAudio(context.Background(), testScope(), command.AudioInput{Audio: []byte{1, 2, 3}})
		if err != nil {
			t.Fatalf("ProcessAudio() error = %v", err)
		}
		if out.ResponseText != "It's 3:04 PM." {
			t.Errorf("response = %q", out.ResponseText)
		}
		if len(out.Transitions) == 0 || out.Transitions[0].To != model.StateTranscribing {
			t.Errorf("transitions = %+v, want transcribing first", out.Transitions)
		}
	})

	t.Run("Transcription Error", func(t *testing.T) {
		speech := &fakeTranscriber{err: errors.New("speech service down")}
		uc := newTestUseCase(t, &fakeSender{}, speech, 0.2, device.StaticReader{})

		_, err := uc.ProcessAudio(context.Background(), testScope(), command.AudioInput{Audio: []byte{1}})
		if !errors.Is(err, command.ErrTranscriptionFailed) {
			t.Fatalf("error = %v, want ErrTranscriptionFailed", err)
		}
	})

	t.Run("Empty Transcription", func(t *testing.T) {
		speech := &fakeTranscriber{text: "   "}
		uc := newTestUseCase(t, &fakeSender{}, speech, 0.2, device.StaticReader{})

		_, err := uc.ProcessAudio(context.Background(), testScope(), command.AudioInput{Audio: []byte{1}})
		if !errors.Is(err, command.ErrTranscriptionFailed) {
			t.Fatalf("error = %v, want ErrTranscriptionFailed", err)
		}
	})
}

func TestErrorStateAutoResets(t *testing.T) {
	sender := &fakeSender{err: errors.New("down")}
	uc := newTestUseCase(t, sender, nil, 0.2, device.StaticReader{})

	_, err := uc.ProcessText(context.Background(), testScope(), command.ProcessInput{Text: "check my email inbox"})
	if err == nil {
		t.Fatalf("error = nil, want server failure")
	}
	if got := uc.State(); got != model.StateError {
		t.Fatalf("state = %s, want error", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for uc.State() != model.StateIdle {
		if time.Now().After(deadline) {
			t.Fatalf("pipeline never returned to idle")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAnswerCacheRoundTrip(t *testing.T) {
	uc := newTestUseCase(t, &fakeSender{err: errors.New("must not be called")}, nil, 0.2, device.StaticReader{})
	ctx := context.Background()
	text := "calculate 10 plus 5"

	first, err := uc.ProcessText(ctx, testScope(), command.ProcessInput{Text: text})
	if err != nil {
		t.Fatalf("first ProcessText() error = %v", err)
	}
	if first.Method != model.MethodOnDevice {
		t.Fatalf("first method = %s, want on_device", first.Method)
	}

	second, err := uc.ProcessText(ctx, testScope(), command.ProcessInput{Text: text})
	if err != nil {
		t.Fatalf("second ProcessText() error = %v", err)
	}
	if second.Method != model.MethodOffline {
		t.Errorf("second method = %s, want offline cache hit", second.Method)
	}
	if second.ResponseText != first.ResponseText {
		t.Errorf("cached response %q differs from original %q", second.ResponseText, first.ResponseText)
	}
}

func TestSessionMemoryTracksPriorIntent(t *testing.T) {
	uc := newTestUseCase(t, &fakeSender{}, nil, 0.2, device.StaticReader{})
	sc := testScope()

	if _, err := uc.ProcessText(context.Background(), sc, command.ProcessInput{Text: "calculate 10 plus 5"}); err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}

	if got := uc.sessions.priorIntent(sc.SessionID); got != model.IntentCalculation {
		t.Errorf("prior intent = %s, want calculation", got)
	}
	if got := uc.sessions.priorIntent("unrelated"); got != model.IntentUnknown {
		t.Errorf("prior intent for fresh session = %s, want unknown", got)
	}
}

func TestResetFromCompletedIsNoop(t *testing.T) {
	uc := newTestUseCase(t, &fakeSender{}, nil, 0.2, device.StaticReader{})

	if got := uc.State(); got != model.StateIdle {
		t.Fatalf("initial state = %s", got)
	}
	uc.Reset()
	if got := uc.State(); got != model.StateIdle {
		t.Errorf("state after idle reset = %s", got)
	}
}
