// internal/models/health_models.go
package models

// HealthResponse is the liveness payload served at /health. Uptime is
// reported in seconds since process start.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
