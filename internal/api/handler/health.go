package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/cricle/internal/api/response"
	"github.com/mcoot/cricle/internal/services/dataset"
)

// Pinger is implemented by storage backends with a remote connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports server health
type HealthHandler struct {
	dataset *dataset.Dataset
	pinger  Pinger
}

// NewHealthHandler creates a new health handler. pinger may be nil.
func NewHealthHandler(d *dataset.Dataset, pinger Pinger) *HealthHandler {
	return &HealthHandler{dataset: d, pinger: pinger}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "unavailable", DatasetSize: h.dataset.Size()})
			return
		}
	}

	response.JSON(w, http.StatusOK, response.Health{Status: "ok", DatasetSize: h.dataset.Size()})
}
