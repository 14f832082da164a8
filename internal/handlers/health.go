package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pzaitsev/user-records/internal/logger"
)

// DatabaseReadier defines the interface that the health repository must
// implement.
type DatabaseReadier interface {
	Ready(ctx context.Context) error
}

// HealthCheck is one named sub-check in a health response.
// swagger:model HealthCheck
type HealthCheck struct {
	// Sub-check name
	// default: databaseReady
	Name string `json:"name"`

	// Sub-check status
	// default: UP
	Status string `json:"status"`
}

// HealthResponse is the body of a health probe response. New sub-checks can
// be appended to Checks without breaking the shape.
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: UP
	Status string `json:"status"`

	// Named sub-checks
	Checks []HealthCheck `json:"checks"`
}

// Health statuses.
const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// NewHealthHandler returns an HTTP handler for the liveness/readiness probe.
// @Summary Health check
// @Description Reports service and database liveness
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Failure 503 {object} handlers.HealthResponse "Database is unreachable"
// @Router /health/ [get]
func NewHealthHandler(db DatabaseReadier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overall := statusUp
		dbStatus := statusUp
		code := http.StatusOK

		if err := db.Ready(r.Context()); err != nil {
			logger.Log.Errorw("database readiness check failed", "err", err)
			overall = statusDown
			dbStatus = statusDown
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(HealthResponse{
			Status: overall,
			Checks: []HealthCheck{
				{Name: "databaseReady", Status: dbStatus},
			},
		})
	}
}
