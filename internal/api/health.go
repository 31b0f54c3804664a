package api

import (
	"net/http"
	"time"

	"github.com/whiskyhouse/whisky-service/internal/api/respond"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// HealthHandler reports whether the store is reachable.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(s store.Store) *HealthHandler { return &HealthHandler{store: s} }

// CheckHealth handles GET /health. It pings the store on every call.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.store.HealthPing(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":    "DOWN",
			"error":     err.Error(),
			"timestamp": now,
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "UP",
		"timestamp": now,
	})
}
