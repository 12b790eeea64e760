package dto

// HealthResponse reports the service health state. Details carries
// per-dependency results on readiness checks.
type HealthResponse struct {
	Status  string         `json:"status"`
	Service string         `json:"service,omitempty"`
	Uptime  string         `json:"uptime,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
