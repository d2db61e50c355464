// Package speech is the speech-to-text collaborator interface plus an
// HTTP client implementation. Audio capture itself happens elsewhere;
// this package only turns captured bytes into text.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrTranscriptionFailed is the error kind for any transcription failure.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Transcriber converts captured audio bytes into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// HTTPTranscriber calls a JSON-over-HTTP transcription endpoint.
type HTTPTranscriber struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPTranscriber creates a transcription client.
func NewHTTPTranscriber(baseURL, apiKey string) *HTTPTranscriber {
	return &HTTPTranscriber{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type transcribeResponse struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
}

// Transcribe posts audio to the endpoint's /v1/transcribe route.
func (t *HTTPTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("%w: empty audio", ErrTranscriptionFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v1/transcribe", bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrTranscriptionFailed, resp.StatusCode, string(raw))
	}

	var result transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	if !result.Success {
		return "", fmt.Errorf("%w: endpoint reported failure", ErrTranscriptionFailed)
	}

	return result.Text, nil
}
