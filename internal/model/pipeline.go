package model

// PipelineState describes where a command is in the processing pipeline.
// Transitions are one-directional; StateError is terminal for the command
// until an explicit reset.
type PipelineState string

const (
	StateIdle         PipelineState = "idle"
	StateTranscribing PipelineState = "transcribing"
	StateClassifying  PipelineState = "classifying"
	StateRouting      PipelineState = "routing"
	StateExecuting    PipelineState = "executing"
	StateCompleted    PipelineState = "completed"
	StateError        PipelineState = "error"
)

// legalTransitions encodes the allowed forward edges of the state machine.
var legalTransitions = map[PipelineState][]PipelineState{
	StateIdle:         {StateTranscribing, StateClassifying},
	StateTranscribing: {StateClassifying, StateError},
	StateClassifying:  {StateRouting, StateError},
	StateRouting:      {StateExecuting, StateError},
	StateExecuting:    {StateCompleted, StateError},
	StateCompleted:    {StateIdle},
	StateError:        {StateIdle}, // explicit reset only
}

// CanTransition reports whether moving from s to next is legal.
func (s PipelineState) CanTransition(next PipelineState) bool {
	for _, n := range legalTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the state ends a command's lifecycle.
func (s PipelineState) Terminal() bool {
	return s == StateCompleted || s == StateError
}

// StateTransition is the value describing one pipeline step, returned to
// the caller instead of publishing through any UI notification primitive.
type StateTransition struct {
	From PipelineState
	To   PipelineState
}
