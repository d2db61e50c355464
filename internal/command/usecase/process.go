package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/intent"
	"hybrid-command-router/internal/model"
)

// ProcessText runs one typed or pre-transcribed command through the
// pipeline: classify, route, execute, record.
func (uc *implUseCase) ProcessText(ctx context.Context, sc model.Scope, input command.ProcessInput) (command.ProcessOutput, error) {
	return uc.run(ctx, sc, input.Text, nil)
}

// ProcessAudio transcribes the audio, then processes the resulting text.
func (uc *implUseCase) ProcessAudio(ctx context.Context, sc model.Scope, input command.AudioInput) (command.ProcessOutput, error) {
	return uc.run(ctx, sc, "", input.Audio)
}

func (uc *implUseCase) Statistics(ctx context.Context) model.ProcessingStatistics {
	return uc.tracker.Snapshot()
}

func (uc *implUseCase) State() model.PipelineState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Reset returns the pipeline to idle from a terminal state. It is also
// invoked automatically after the configured delay following an error.
func (uc *implUseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state.Terminal() {
		uc.state = model.StateIdle
	}
}

func (uc *implUseCase) run(ctx context.Context, sc model.Scope, text string, audio []byte) (command.ProcessOutput, error) {
	first := model.StateClassifying
	if audio != nil {
		first = model.StateTranscribing
	}
	transitions, err := uc.begin(first)
	if err != nil {
		return command.ProcessOutput{}, err
	}

	commandID := uuid.NewString()
	start := uc.clock()

	if audio != nil {
		uc.l.Infof(ctx, "Process: command=%s transcribing %d bytes", commandID, len(audio))
		transcribed, terr := uc.speech.Transcribe(ctx, audio)
		if terr != nil {
			uc.fail(&transitions)
			return command.ProcessOutput{}, fmt.Errorf("%w: %v", command.ErrTranscriptionFailed, terr)
		}
		if strings.TrimSpace(transcribed) == "" {
			uc.fail(&transitions)
			return command.ProcessOutput{}, fmt.Errorf("%w: empty transcription", command.ErrTranscriptionFailed)
		}
		text = transcribed
		uc.advance(&transitions, model.StateClassifying)
	}

	cctx := uc.commandContext(sc)
	cls := uc.classifier.Classify(text, intent.Hints{
		PriorIntent: cctx.PriorIntent,
		TimeOfDay:   cctx.TimeOfDay,
	})
	uc.l.Infof(ctx, "Process: command=%s user=%s intent=%s confidence=%.2f", commandID, sc.UserID, cls.Intent, cls.Confidence)

	uc.advance(&transitions, model.StateRouting)
	decision := uc.engine.Route(text, cls, cctx.Device, cctx.Settings)
	uc.l.Infof(ctx, "Process: command=%s route=%s: %s", commandID, decision.Route.Kind, decision.Explanation)

	uc.advance(&transitions, model.StateExecuting)
	candidate, strategy, err := uc.execute(ctx, sc, text, cls, decision, cctx)
	if err != nil {
		uc.l.Errorf(ctx, "Process: command=%s failed: %v", commandID, err)
		uc.fail(&transitions)
		return command.ProcessOutput{}, err
	}

	elapsed := uc.clock().Sub(start)
	method := methodFor(decision.Route)

	uc.tracker.Record(method, candidate.Confidence, elapsed)
	if serr := uc.tracker.Save(ctx); serr != nil {
		uc.l.Warnf(ctx, "Process: persisting statistics failed: %v", serr)
	}

	uc.sessions.remember(sc.SessionID, model.Exchange{
		UserText:     text,
		ResponseText: candidate.ResponseText,
		Intent:       cls.Intent,
		At:           uc.clock(),
	})
	if cacheable(cls.Intent, candidate.Source) {
		uc.answers.Add(text, candidate)
	}

	uc.advance(&transitions, model.StateCompleted)
	uc.advance(&transitions, model.StateIdle)

	return command.ProcessOutput{
		CommandID:          commandID,
		ResponseText:       candidate.ResponseText,
		Audio:              candidate.Audio,
		Intent:             cls.Intent,
		Confidence:         candidate.Confidence,
		Method:             method,
		WasOffline:         method == model.MethodOffline || method == model.MethodOnDevice,
		RoutingExplanation: decision.Explanation,
		MergeStrategy:      strategy,
		Elapsed:            elapsed,
		Transitions:        transitions,
	}, nil
}

// commandContext assembles the context bundle for one command: a fresh
// device snapshot, the configured settings and this session's memory.
func (uc *implUseCase) commandContext(sc model.Scope) model.CommandContext {
	return model.CommandContext{
		TimeOfDay:   model.BucketForTime(uc.clock()),
		PriorIntent: uc.sessions.priorIntent(sc.SessionID),
		History:     uc.sessions.history(sc.SessionID),
		Device:      device.Snapshot(uc.device),
		Settings:    uc.settings,
	}
}

// begin claims the single-command slot. Only an idle pipeline accepts a
// new command; anything else is rejected.
func (uc *implUseCase) begin(to model.PipelineState) ([]model.StateTransition, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state != model.StateIdle {
		return nil, command.ErrCommandInProgress
	}
	uc.state = to
	return []model.StateTransition{{From: model.StateIdle, To: to}}, nil
}

func (uc *implUseCase) advance(transitions *[]model.StateTransition, to model.PipelineState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.state.CanTransition(to) {
		// Transitions are driven by the fixed pipeline order; hitting
		// this indicates a bug, not a recoverable condition.
		uc.l.Errorf(context.Background(), "advance: illegal transition %s -> %s", uc.state, to)
	}
	*transitions = append(*transitions, model.StateTransition{From: uc.state, To: to})
	uc.state = to
}

// fail moves the pipeline to the error state and schedules the automatic
// return to idle so a stuck pipeline cannot block future commands.
func (uc *implUseCase) fail(transitions *[]model.StateTransition) {
	uc.advance(transitions, model.StateError)
	delay := uc.errorResetDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}
	time.AfterFunc(delay, uc.Reset)
}

func methodFor(r model.Route) model.ProcessingMethod {
	switch r.Kind {
	case model.RouteOffline:
		return model.MethodOffline
	case model.RouteOnDevice:
		return model.MethodOnDevice
	case model.RouteServer:
		return model.MethodServer
	default:
		if r.OnDeviceFirst {
			return model.MethodHybrid
		}
		return model.MethodServer
	}
}
