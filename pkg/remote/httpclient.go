package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPProcessor is a Processor over a JSON-over-HTTP processing endpoint.
type HTTPProcessor struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPProcessor creates a client for one processing endpoint.
func NewHTTPProcessor(name, baseURL, apiKey string, timeout time.Duration) *HTTPProcessor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProcessor{
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendCommand posts the command to the endpoint's /v1/process route.
func (p *HTTPProcessor) SendCommand(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.baseURL + "/v1/process"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("endpoint %s error %d: %s", p.name, resp.StatusCode, string(raw))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", p.name, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, p.name)
	}

	result.Endpoint = p.name
	return &result, nil
}

// Name returns the endpoint name.
func (p *HTTPProcessor) Name() string { return p.name }

// Endpoint returns the base URL being used.
func (p *HTTPProcessor) Endpoint() string { return p.baseURL }
