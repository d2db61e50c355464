// Package remote is the remote-processing collaborator: it sends a user
// command to a prioritized chain of processing endpoints and returns the
// server's answer.
package remote

import "context"

// Processor is one remote processing endpoint.
type Processor interface {
	// SendCommand submits a command for server-side processing.
	SendCommand(ctx context.Context, req *Request) (*Response, error)

	// Name returns the endpoint name (e.g. "primary", "backup").
	Name() string

	// Endpoint returns the base URL being used.
	Endpoint() string
}

// Request is a normalized remote processing request.
type Request struct {
	Text      string            `json:"text"`
	SessionID string            `json:"session_id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Response is a normalized remote processing response.
type Response struct {
	Text       string  `json:"text"`
	Audio      []byte  `json:"audio,omitempty"`
	Success    bool    `json:"success"`
	Confidence float64 `json:"confidence"`
	CostUnits  float64 `json:"cost_units"`
	Endpoint   string  `json:"-"`
}
