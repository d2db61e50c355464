package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Engine
	Engine EngineConfig
	Device DeviceConfig

	// Collaborators
	Remote RemoteConfig
	Speech SpeechConfig
	Stats  StatsConfig

	// API protection
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig tunes the routing and orchestration core.
type EngineConfig struct {
	ConfidenceThreshold float64
	OfflineFirst        bool
	HybridTimeout       time.Duration
	ErrorResetDelay     time.Duration
	AnswerCacheSize     int
	AnswerCacheTTL      time.Duration
	SessionTTL          time.Duration
	Timezone            string
}

// DeviceConfig provides static device readings for hosts without a real
// device probe.
type DeviceConfig struct {
	BatteryLevel  float64
	LowPowerMode  bool
	NetworkDown   bool
	Locale        string
	Brightness    int
	Volume        int
	ModelName     string
	StorageFreeGB float64
}

// RemoteConfig holds the remote processing endpoint chain.
type RemoteConfig struct {
	Endpoints       []EndpointConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// EndpointConfig holds configuration for a single remote endpoint.
type EndpointConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Timeout  string `yaml:"timeout"`
}

type SpeechConfig struct {
	BaseURL string
	APIKey  string
}

type StatsConfig struct {
	StorePath string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Engine
	cfg.Engine.ConfidenceThreshold = viper.GetFloat64("engine.confidence_threshold")
	cfg.Engine.OfflineFirst = viper.GetBool("engine.offline_first")
	cfg.Engine.HybridTimeout = viper.GetDuration("engine.hybrid_timeout")
	cfg.Engine.ErrorResetDelay = viper.GetDuration("engine.error_reset_delay")
	cfg.Engine.AnswerCacheSize = viper.GetInt("engine.answer_cache_size")
	cfg.Engine.AnswerCacheTTL = viper.GetDuration("engine.answer_cache_ttl")
	cfg.Engine.SessionTTL = viper.GetDuration("engine.session_ttl")
	cfg.Engine.Timezone = viper.GetString("engine.timezone")

	// Device snapshot for static readers
	cfg.Device.BatteryLevel = viper.GetFloat64("device.battery_level")
	cfg.Device.LowPowerMode = viper.GetBool("device.low_power_mode")
	cfg.Device.NetworkDown = viper.GetBool("device.network_down")
	cfg.Device.Locale = viper.GetString("device.locale")
	cfg.Device.Brightness = viper.GetInt("device.brightness")
	cfg.Device.Volume = viper.GetInt("device.volume")
	cfg.Device.ModelName = viper.GetString("device.model_name")
	cfg.Device.StorageFreeGB = viper.GetFloat64("device.storage_free_gb")

	// Remote processing chain
	cfg.Remote.FallbackEnabled = viper.GetBool("remote.fallback_enabled")
	cfg.Remote.RetryAttempts = viper.GetInt("remote.retry_attempts")
	cfg.Remote.RetryDelay = viper.GetString("remote.retry_delay")
	cfg.Remote.MaxTotalTimeout = viper.GetString("remote.max_total_timeout")

	if viper.IsSet("remote.endpoints") {
		endpointsRaw := viper.Get("remote.endpoints")
		if list, ok := endpointsRaw.([]interface{}); ok {
			for _, e := range list {
				if m, ok := e.(map[string]interface{}); ok {
					cfg.Remote.Endpoints = append(cfg.Remote.Endpoints, EndpointConfig{
						Name:     getStringFromMap(m, "name"),
						Enabled:  getBoolFromMap(m, "enabled"),
						Priority: getIntFromMap(m, "priority"),
						BaseURL:  getStringFromMap(m, "base_url"),
						APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
						Timeout:  getStringFromMap(m, "timeout"),
					})
				}
			}
		}
	}

	// Speech-to-text collaborator
	cfg.Speech.BaseURL = viper.GetString("speech.base_url")
	cfg.Speech.APIKey = expandEnvVar(viper.GetString("speech.api_key"))

	// Statistics persistence
	cfg.Stats.StorePath = viper.GetString("stats.store_path")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("engine.confidence_threshold", 0.7)
	viper.SetDefault("engine.offline_first", false)
	viper.SetDefault("engine.hybrid_timeout", "10s")
	viper.SetDefault("engine.error_reset_delay", "2s")
	viper.SetDefault("engine.answer_cache_size", 256)
	viper.SetDefault("engine.answer_cache_ttl", "10m")
	viper.SetDefault("engine.session_ttl", "10m")
	viper.SetDefault("engine.timezone", "UTC")

	viper.SetDefault("device.battery_level", 1.0)
	viper.SetDefault("device.locale", "en-US")
	viper.SetDefault("device.brightness", 50)
	viper.SetDefault("device.volume", 50)
	viper.SetDefault("device.model_name", "virtual-device")
	viper.SetDefault("device.storage_free_gb", 32.0)

	viper.SetDefault("remote.fallback_enabled", true)
	viper.SetDefault("remote.retry_attempts", 2)
	viper.SetDefault("remote.retry_delay", "500ms")
	viper.SetDefault("remote.max_total_timeout", "30s")

	viper.SetDefault("stats.store_path", "data/engine-state.json")

	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
}

// getStringFromMap safely extracts a string value from a map.
func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getBoolFromMap safely extracts a bool value from a map.
func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getIntFromMap safely extracts an int value from a map.
func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// expandEnvVar expands ${VAR} references in config values.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
	}
	return value
}
