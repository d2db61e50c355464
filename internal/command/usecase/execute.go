package usecase

import (
	"context"
	"fmt"

	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/pkg/remote"
)

// execute runs the routed path and returns the winning candidate. The
// merge strategy name is non-empty only for the hybrid path.
func (uc *implUseCase) execute(
	ctx context.Context,
	sc model.Scope,
	text string,
	cls model.ClassificationResult,
	decision model.ProcessingDecision,
	cctx model.CommandContext,
) (model.CandidateResult, string, error) {
	switch decision.Route.Kind {
	case model.RouteOffline:
		res, err := uc.executeOffline(ctx, text, cls, decision, cctx)
		return res, "", err

	case model.RouteOnDevice:
		res, err := uc.executeOnDevice(ctx, text, cls, cctx)
		return res, "", err

	case model.RouteServer:
		res, err := uc.serverCandidate(ctx, sc, text)
		if err != nil {
			return model.CandidateResult{}, "", &command.IntentError{
				Kind:   command.ErrServerProcessingFailed,
				Intent: cls.Intent,
				Err:    err,
			}
		}
		return res, "", nil

	case model.RouteHybrid:
		if !decision.Route.OnDeviceFirst {
			res, err := uc.serverCandidate(ctx, sc, text)
			if err != nil {
				return model.CandidateResult{}, "", &command.IntentError{
					Kind:   command.ErrServerProcessingFailed,
					Intent: cls.Intent,
					Err:    err,
				}
			}
			return res, "", nil
		}
		return uc.executeHybrid(ctx, sc, text, cls, decision, cctx)

	default:
		return model.CandidateResult{}, "", fmt.Errorf("%w: unknown route kind %q", command.ErrRoutingFailed, decision.Route.Kind)
	}
}

func (uc *implUseCase) executeOffline(
	ctx context.Context,
	text string,
	cls model.ClassificationResult,
	decision model.ProcessingDecision,
	cctx model.CommandContext,
) (model.CandidateResult, error) {
	if decision.Route.Cached {
		if res, ok := uc.answers.Get(text); ok {
			return res, nil
		}
		// Entry expired between the routing probe and the lookup;
		// fall through to the handler.
	}

	handler, err := uc.registry.ForIntent(decision.Route.HandlerID)
	if err != nil {
		return model.CandidateResult{}, &command.IntentError{
			Kind:   command.ErrNoOfflineHandler,
			Intent: decision.Route.HandlerID,
		}
	}
	if !handler.CanHandle(text) {
		return model.CandidateResult{}, &command.IntentError{
			Kind:   command.ErrOfflineHandlerCannotProcess,
			Intent: decision.Route.HandlerID,
		}
	}

	res, err := handler.Process(ctx, text, cctx)
	if err != nil {
		return model.CandidateResult{}, &command.IntentError{
			Kind:   command.ErrOfflineHandlerCannotProcess,
			Intent: decision.Route.HandlerID,
			Err:    err,
		}
	}
	res.Source = model.SourceOnDevice
	return res, nil
}

// executeOnDevice answers via the on-device handler. There is no
// automatic escalation to the server on failure.
func (uc *implUseCase) executeOnDevice(
	ctx context.Context,
	text string,
	cls model.ClassificationResult,
	cctx model.CommandContext,
) (model.CandidateResult, error) {
	handler, err := uc.registry.ForIntent(cls.Intent)
	if err != nil || !handler.CanHandle(text) {
		return model.CandidateResult{}, &command.IntentError{
			Kind:   command.ErrOnDeviceProcessingUnavailable,
			Intent: cls.Intent,
		}
	}

	res, err := handler.Process(ctx, text, cctx)
	if err != nil {
		return model.CandidateResult{}, &command.IntentError{
			Kind:   command.ErrOfflineHandlerCannotProcess,
			Intent: cls.Intent,
			Err:    err,
		}
	}
	res.Source = model.SourceOnDevice
	return res, nil
}

// serverCandidate sends the command to the remote processing chain and
// normalizes the response into a candidate result.
func (uc *implUseCase) serverCandidate(ctx context.Context, sc model.Scope, text string) (model.CandidateResult, error) {
	resp, err := uc.remote.SendCommand(ctx, &remote.Request{
		Text:      text,
		SessionID: sc.SessionID,
	})
	if err != nil {
		return model.CandidateResult{}, err
	}

	confidence := resp.Confidence
	if confidence == 0 {
		confidence = defaultServerConfidence
	}
	cost := resp.CostUnits
	if cost == 0 {
		cost = defaultServerCost
	}
	return model.CandidateResult{
		ResponseText: resp.Text,
		Audio:        resp.Audio,
		Confidence:   model.Clamp01(confidence),
		Cost:         cost,
		PrivacyScore: serverPrivacyScore,
		Source:       model.SourceServer,
	}, nil
}
