package remote

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProcessor is a test implementation of the Processor interface
type mockProcessor struct {
	name       string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProcessor) SendCommand(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock processor error")
	}
	return m.response, nil
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Endpoint() string {
	return "https://" + m.name + ".example.com"
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoCount int
	warnCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoCount++
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnCount++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

func TestSendCommand_SuccessWithPrimaryEndpoint(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Text:       "Hello from the primary endpoint",
		Success:    true,
		Confidence: 0.9,
		Endpoint:   "primary",
	}

	primary := &mockProcessor{
		name:       "primary",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}

	manager := NewManager([]Processor{primary}, config, logger)

	// Execute
	req := &Request{Text: "what is the weather", SessionID: "s-1"}
	resp, err := manager.SendCommand(context.Background(), req)

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Endpoint != "primary" {
		t.Errorf("Expected endpoint 'primary', got: %s", resp.Endpoint)
	}

	if primary.callCount != 1 {
		t.Errorf("Expected primary endpoint to be called once, got: %d", primary.callCount)
	}

	if logger.infoCount != 1 {
		t.Errorf("Expected 1 info log message, got: %d", logger.infoCount)
	}

	if logger.warnCount != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", logger.warnCount)
	}
}

func TestSendCommand_FallbackToBackupEndpoint(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Text:     "Hello from the backup endpoint",
		Success:  true,
		Endpoint: "backup",
	}

	primary := &mockProcessor{
		name:       "primary",
		shouldFail: true,
	}

	backup := &mockProcessor{
		name:       "backup",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Processor{primary, backup}, config, logger)

	// Execute
	resp, err := manager.SendCommand(context.Background(), &Request{Text: "hello"})

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Endpoint != "backup" {
		t.Errorf("Expected endpoint 'backup', got: %s", resp.Endpoint)
	}

	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary endpoint to be called 2 times, got: %d", primary.callCount)
	}

	// Backup should be called once
	if backup.callCount != 1 {
		t.Errorf("Expected backup endpoint to be called once, got: %d", backup.callCount)
	}

	// Should have 1 info (success) and 1 warn (primary failure)
	if logger.infoCount != 1 {
		t.Errorf("Expected 1 info log message, got: %d", logger.infoCount)
	}

	if logger.warnCount != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", logger.warnCount)
	}
}

func TestSendCommand_AllEndpointsFail(t *testing.T) {
	// Setup
	primary := &mockProcessor{
		name:       "primary",
		shouldFail: true,
	}

	backup := &mockProcessor{
		name:       "backup",
		shouldFail: true,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Processor{primary, backup}, config, logger)

	// Execute
	resp, err := manager.SendCommand(context.Background(), &Request{Text: "hello"})

	// Verify
	if err == nil {
		t.Fatal("Expected error when all endpoints fail, got nil")
	}

	if resp != nil {
		t.Errorf("Expected nil response, got: %+v", resp)
	}

	if !errors.Is(err, ErrAllEndpointsFailed) {
		t.Errorf("Expected ErrAllEndpointsFailed, got: %v", err)
	}

	var endpointErr *EndpointError
	if errors.As(err, &endpointErr) {
		t.Errorf("Expected endpoint detail to be flattened into the message, got wrapped %v", endpointErr)
	}

	if primary.callCount != 2 || backup.callCount != 2 {
		t.Errorf("Expected both endpoints retried twice, got: %d and %d", primary.callCount, backup.callCount)
	}
}

func TestSendCommand_FallbackDisabled(t *testing.T) {
	primary := &mockProcessor{
		name:       "primary",
		shouldFail: true,
	}

	backup := &mockProcessor{
		name: "backup",
		response: &Response{
			Text:    "should never be used",
			Success: true,
		},
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Processor{primary, backup}, config, logger)

	_, err := manager.SendCommand(context.Background(), &Request{Text: "hello"})
	if !errors.Is(err, ErrAllEndpointsFailed) {
		t.Fatalf("Expected ErrAllEndpointsFailed, got: %v", err)
	}

	if backup.callCount != 0 {
		t.Errorf("Expected backup endpoint unused with fallback disabled, got: %d calls", backup.callCount)
	}
}

func TestSendCommand_NoEndpointsConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.SendCommand(context.Background(), &Request{Text: "hello"})
	if !errors.Is(err, ErrNoEndpointsConfigured) {
		t.Fatalf("Expected ErrNoEndpointsConfigured, got: %v", err)
	}
}

func TestSendCommand_GlobalTimeout(t *testing.T) {
	slow := &mockProcessor{
		name:       "slow",
		shouldFail: true,
	}

	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   10,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}

	manager := NewManager([]Processor{slow}, config, &mockLogger{})

	start := time.Now()
	_, err := manager.SendCommand(context.Background(), &Request{Text: "hello"})
	if err == nil {
		t.Fatal("Expected error from global timeout, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected manager to give up quickly, took %v", elapsed)
	}
}
