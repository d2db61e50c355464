package remote

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hybrid-command-router/config"
)

// InitializeProcessors creates Processor instances from config.RemoteConfig,
// sorted by priority (ascending) with disabled endpoints filtered out.
// Endpoints that fail to initialize are skipped instead of failing the
// whole service.
func InitializeProcessors(cfg *config.RemoteConfig) ([]Processor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("remote config is nil")
	}
	if len(cfg.Endpoints) == 0 {
		return nil, ErrNoEndpointsConfigured
	}

	var enabled []config.EndpointConfig
	for _, e := range cfg.Endpoints {
		if e.Enabled {
			enabled = append(enabled, e)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoEndpointsConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var processors []Processor
	var initErrors []string
	for _, e := range enabled {
		p, err := createProcessor(e)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("endpoint %s (priority %d): %v", e.Name, e.Priority, err))
			continue
		}
		processors = append(processors, p)
	}

	if len(processors) == 0 {
		return nil, fmt.Errorf("no endpoints successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return processors, nil
}

// ManagerConfigFrom parses the chain-level durations out of config.
func ManagerConfigFrom(cfg *config.RemoteConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 30*time.Second),
	}
}

func createProcessor(cfg config.EndpointConfig) (Processor, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	name := cfg.Name
	if name == "" {
		name = cfg.BaseURL
	}
	return NewHTTPProcessor(name, cfg.BaseURL, cfg.APIKey, parseDuration(cfg.Timeout, defaultTimeout)), nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
