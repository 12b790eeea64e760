package handlers

import (
	"context"
	"net/http"
	"time"

	"STAYNEST_BACK-END/internal/dto"
	"STAYNEST_BACK-END/internal/utils"
)

const serviceName = "staynest-api"

// ReadinessProber checks a dependency the service cannot run without.
// *pgxpool.Pool satisfies it.
type ReadinessProber interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and readiness of the marketplace API.
type HealthHandler struct {
	db      ReadinessProber
	started time.Time
}

// NewHealthHandler creates a HealthHandler probing the given database.
func NewHealthHandler(db ReadinessProber) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

func (h *HealthHandler) uptime() string {
	return time.Since(h.started).Round(time.Second).String()
}

// HealthCheck reports overall service status without touching any
// dependency.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: serviceName,
		Uptime:  h.uptime(),
	})
}

// LivenessCheck answers as long as the process is serving requests.
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "alive",
		Service: serviceName,
		Uptime:  h.uptime(),
	})
}

// ReadinessCheck verifies the database is reachable before declaring
// the service ready for marketplace traffic.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Service: serviceName,
			Uptime:  h.uptime(),
			Details: map[string]any{"postgres": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Service: serviceName,
		Uptime:  h.uptime(),
		Details: map[string]any{"postgres": "ok"},
	})
}
