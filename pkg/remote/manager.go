package remote

import (
	"context"
	"fmt"
	"time"

	"hybrid-command-router/pkg/log"
)

// Manager orchestrates endpoint selection, fallback, and retry logic.
type Manager struct {
	processors []Processor
	config     *Config
	logger     log.Logger
}

// Config defines manager behavior for the whole fallback chain.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout across the entire chain
}

// NewManager creates a manager over processors in priority order.
func NewManager(processors []Processor, config *Config, logger log.Logger) *Manager {
	return &Manager{
		processors: processors,
		config:     config,
		logger:     logger,
	}
}

// SendCommand iterates through endpoints in priority order with fallback.
func (m *Manager) SendCommand(ctx context.Context, req *Request) (*Response, error) {
	if len(m.processors) == 0 {
		return nil, ErrNoEndpointsConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, p := range m.processors {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d endpoint(s): %w",
				len(m.processors), ctx.Err())
		default:
		}

		resp, err := m.sendWithRetry(ctx, p, req)
		if err == nil {
			m.logger.Infof(ctx, "remote processing succeeded on %s", p.Name())
			return resp, nil
		}

		m.logger.Warnf(ctx, "remote processing failed on %s: %v", p.Name(), err)
		lastErr = &EndpointError{Endpoint: p.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllEndpointsFailed, lastErr)
}

// sendWithRetry retries one endpoint with linear backoff.
func (m *Manager) sendWithRetry(ctx context.Context, p Processor, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := p.SendCommand(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
