package types

// PredictionResponse is returned by GET /predict and GET /predict-ps.
type PredictionResponse struct {
	// Predicted class label.
	// example: 1
	Result int `json:"result" example:"1"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: classifier not ready
	Error string `json:"error" example:"classifier not ready"`
	// HTTP status code.
	// example: 500
	Code int `json:"code" example:"500"`
}

// SlotStatus summarizes one model slot for /status.
type SlotStatus struct {
	// Slot name (tabular or sequence).
	// example: tabular
	Slot string `json:"slot" example:"tabular"`
	// Readiness state of the slot (unset, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Training run identifier; empty for eagerly built models.
	// example: 3f1c2a8e-6f0b-4a8e-9c1d-2b7a9e0f4d11
	RunID string `json:"run_id,omitempty" example:"3f1c2a8e-6f0b-4a8e-9c1d-2b7a9e0f4d11"`
	// Number of training samples used.
	// example: 768
	Samples int `json:"samples,omitempty" example:"768"`
	// Wall-clock training duration in milliseconds.
	// example: 42
	TrainingMillis int64 `json:"training_ms,omitempty" example:"42"`
	// Time the model became ready (unix seconds).
	// example: 1700000000
	ReadySince int64 `json:"ready_since_unix,omitempty" example:"1700000000"`
	// Terminal training error, if any.
	Error string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Model slots.
	Models []SlotStatus `json:"models"`
	// True once every slot is ready.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
