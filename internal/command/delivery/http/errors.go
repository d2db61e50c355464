package http

import (
	"errors"
	"net/http"

	"hybrid-command-router/internal/command"
)

// statusFor translates pipeline errors into HTTP status codes. Unknown
// errors become 500 with the detail hidden from the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, command.ErrCommandInProgress):
		return http.StatusConflict
	case errors.Is(err, command.ErrTranscriptionFailed),
		errors.Is(err, command.ErrIntentClassificationFailed),
		errors.Is(err, command.ErrNoOfflineHandler),
		errors.Is(err, command.ErrOfflineHandlerCannotProcess),
		errors.Is(err, command.ErrOnDeviceProcessingUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, command.ErrServerProcessingFailed),
		errors.Is(err, command.ErrHybridProcessingFailed):
		return http.StatusBadGateway
	case errors.Is(err, command.ErrRoutingFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
