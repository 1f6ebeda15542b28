package models

// MessageResponse is the body for simple informational endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check response, yay!
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// DiagnosticsResponse summarizes store connectivity for the /test route
type DiagnosticsResponse struct {
	Backend      string   `json:"backend"`
	Database     string   `json:"database"`
	DatabaseURL  string   `json:"database_url"`
	DatabaseName string   `json:"database_name,omitempty"`
	Collections  []string `json:"collections"`
}
