package handlers

import (
	"net/http"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/utils"
)

// OverviewHandler serves the API root endpoint map
type OverviewHandler struct {
	docs config.DocsConfig
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(docs config.DocsConfig) *OverviewHandler {
	return &OverviewHandler{docs: docs}
}

// Overview handles GET /
// @Summary API root
// @Description Enumerates the available resource paths.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"listings": "/api/listings/",
		"bookings": "/api/bookings/ (requires authentication)",
		"reviews":  "/api/reviews/",
		"auth":     "/api/auth/",
	}
	if h.docs.Enabled {
		endpoints["swagger"] = "/swagger/"
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"message":   "Staynest API",
		"endpoints": endpoints,
	})
}
