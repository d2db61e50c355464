package usecase

import (
	"context"
	"sync"

	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/model"
)

// executeHybrid runs the on-device and server paths in parallel and
// merges the two candidates. A failed branch contributes a zero-confidence
// placeholder so the merger's floor rules pick the surviving answer; only
// a failure of both branches is surfaced as an error.
func (uc *implUseCase) executeHybrid(
	ctx context.Context,
	sc model.Scope,
	text string,
	cls model.ClassificationResult,
	decision model.ProcessingDecision,
	cctx model.CommandContext,
) (model.CandidateResult, string, error) {
	hctx := ctx
	if uc.hybridTimeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, uc.hybridTimeout)
		defer cancel()
	}

	var (
		wg               sync.WaitGroup
		onDev, srv       model.CandidateResult
		onDevErr, srvErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		onDev, onDevErr = uc.executeOnDevice(hctx, text, cls, cctx)
	}()
	go func() {
		defer wg.Done()
		srv, srvErr = uc.serverCandidate(hctx, sc, text)
	}()
	wg.Wait()

	if onDevErr != nil && srvErr != nil {
		return model.CandidateResult{}, "", &command.IntentError{
			Kind:   command.ErrHybridProcessingFailed,
			Intent: cls.Intent,
			Err:    srvErr,
		}
	}
	if onDevErr != nil {
		uc.l.Warnf(ctx, "executeHybrid: on-device branch failed: %v", onDevErr)
		onDev = failedBranch(model.SourceOnDevice)
	}
	if srvErr != nil {
		uc.l.Warnf(ctx, "executeHybrid: server branch failed: %v", srvErr)
		srv = failedBranch(model.SourceServer)
	}

	merged := uc.merger.Merge(onDev, srv, decision)
	return model.CandidateResult{
		ResponseText: merged.ResponseText,
		Audio:        merged.Audio,
		Confidence:   merged.Confidence,
		Cost:         merged.Cost,
		PrivacyScore: merged.PrivacyScore,
		Source:       model.SourceHybrid,
	}, merged.Strategy, nil
}

// failedBranch is the placeholder candidate for a branch that errored
// out. Zero confidence guarantees the merger never selects its text.
func failedBranch(src model.SourceLocation) model.CandidateResult {
	return model.CandidateResult{Source: src}
}
