package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrAllEndpointsFailed indicates every endpoint in the chain failed.
	ErrAllEndpointsFailed = errors.New("all remote endpoints failed")

	// ErrNoEndpointsConfigured indicates no endpoints are enabled.
	ErrNoEndpointsConfigured = errors.New("no remote endpoints configured")

	// ErrUnsuccessful indicates the endpoint answered but flagged failure.
	ErrUnsuccessful = errors.New("remote endpoint reported failure")
)

// EndpointError wraps endpoint-specific errors.
type EndpointError struct {
	Endpoint string
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}
