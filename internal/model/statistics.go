package model

// ProcessingMethod labels how a completed command was ultimately answered.
type ProcessingMethod string

const (
	MethodOffline  ProcessingMethod = "offline"
	MethodOnDevice ProcessingMethod = "on_device"
	MethodServer   ProcessingMethod = "server"
	MethodHybrid   ProcessingMethod = "hybrid"
)

// ProcessingStatistics is a snapshot of the running counters and rolling
// averages over completed commands.
type ProcessingStatistics struct {
	TotalCommands    int64   `json:"total_commands"`
	OnDeviceCommands int64   `json:"on_device_commands"`
	ServerCommands   int64   `json:"server_commands"`
	OfflineCommands  int64   `json:"offline_commands"`
	AvgProcessingMs  float64 `json:"avg_processing_ms"`
	AvgConfidence    float64 `json:"avg_confidence"`
}
