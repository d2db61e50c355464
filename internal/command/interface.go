package command

import (
	"context"

	"hybrid-command-router/internal/model"
)

// UseCase is the processing orchestrator contract: it runs one command at
// a time through classify → route → execute → merge.
type UseCase interface {
	// ProcessText runs a transcribed or typed command through the pipeline.
	ProcessText(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// ProcessAudio transcribes the audio first, then processes the text.
	ProcessAudio(ctx context.Context, sc model.Scope, input AudioInput) (ProcessOutput, error)

	// Statistics returns a snapshot of the running command statistics.
	Statistics(ctx context.Context) model.ProcessingStatistics

	// State reports the current pipeline state.
	State() model.PipelineState

	// Reset forces the pipeline back to idle from a terminal state.
	Reset()
}
