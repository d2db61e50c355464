package command

import "errors"

// Apology maps a pipeline error to a spoken apology with a remedial
// suggestion the user can act on. Unknown errors get a generic apology.
func Apology(err error) string {
	switch {
	case errors.Is(err, ErrTranscriptionFailed):
		return "Sorry, I couldn't make out what you said. Could you repeat that?"
	case errors.Is(err, ErrCommandInProgress):
		return "One moment, I'm still working on your last request."
	case errors.Is(err, ErrNoOfflineHandler):
		return "Sorry, I can't help with that while offline. Try again once you're connected."
	case errors.Is(err, ErrOfflineHandlerCannotProcess):
		return "Sorry, I didn't quite get that. Could you rephrase your request?"
	case errors.Is(err, ErrOnDeviceProcessingUnavailable):
		return "Sorry, I can't handle that on this device. Try again when you're online."
	case errors.Is(err, ErrServerProcessingFailed):
		return "Sorry, I couldn't reach the server. Please check your connection and try again."
	case errors.Is(err, ErrHybridProcessingFailed):
		return "Sorry, something went wrong while answering. Please try again in a moment."
	case errors.Is(err, ErrIntentClassificationFailed), errors.Is(err, ErrRoutingFailed):
		return "Sorry, I didn't understand that request. Could you say it differently?"
	default:
		return "Sorry, something went wrong. Please try again."
	}
}
