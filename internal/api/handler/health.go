package handler

import (
	"context"
	"net/http"

	"github.com/flowgate/flowgate/internal/api/response"
)

// DBPinger verifies database connectivity for the health endpoint.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	db DBPinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// ServeHTTP handles the health check request. The probe is a liveness ping
// against the pool, not a query on the user table.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, healthBody{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusOK, healthBody{
		Status:   "healthy",
		Database: "connected",
	})
}
