package handler

import (
	"net/http"

	"github.com/msomdec/recipe-hub/internal/config"
)

// HealthHandler reports liveness and a sanitized view of the runtime
// configuration.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HandleHealthz responds to liveness probes.
// GET /healthz
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleRuntimeConfig exposes non-sensitive configuration for debugging
// deployments. Secrets never appear here.
// GET /config/runtime
func (h *HealthHandler) HandleRuntimeConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"jwt_algorithm":               h.cfg.JWTAlgorithm,
		"access_token_expire_minutes": h.cfg.AccessTokenExpireMinutes,
		"cors_allow_origins":          h.cfg.CORSOrigins(),
		"database_configured":         h.cfg.DatabaseURL != "",
	})
}
