package command

import (
	"errors"
	"fmt"

	"hybrid-command-router/internal/model"
)

var (
	ErrTranscriptionFailed          = errors.New("transcription failed")
	ErrIntentClassificationFailed   = errors.New("intent classification failed")
	ErrRoutingFailed                = errors.New("routing failed")
	ErrNoOfflineHandler             = errors.New("no offline handler registered for intent")
	ErrOfflineHandlerCannotProcess  = errors.New("offline handler cannot process command")
	ErrOnDeviceProcessingUnavailable = errors.New("on-device processing not available")
	ErrServerProcessingFailed       = errors.New("server processing failed")
	ErrHybridProcessingFailed       = errors.New("hybrid processing failed")
	ErrCommandInProgress            = errors.New("another command is already being processed")
)

// IntentError ties a pipeline failure to the intent that was being handled.
type IntentError struct {
	Kind   error
	Intent model.Intent
	Err    error
}

func (e *IntentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (intent=%s): %v", e.Kind.Error(), e.Intent, e.Err)
	}
	return fmt.Sprintf("%s (intent=%s)", e.Kind.Error(), e.Intent)
}

func (e *IntentError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

func (e *IntentError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}
