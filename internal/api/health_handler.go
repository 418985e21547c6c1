package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ignite/newsletter/internal/pkg/httputil"
)

// Pinger is satisfied by *sql.DB and the Postgres repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker serves liveness and readiness probes.
type HealthChecker struct {
	db        Pinger
	startTime time.Time
}

// NewHealthChecker creates a HealthChecker. db may be nil.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db, startTime: time.Now()}
}

// HandleLiveness always returns 200 with an empty body while the process runs.
//
//	GET /health_check
func (hc *HealthChecker) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w)
}

// HandleReadiness returns 200 only when the database answers a ping.
//
//	GET /health/ready
func (hc *HealthChecker) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.startTime).Truncate(time.Second).String()

	if hc.db == nil {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ready", "database": "not_configured", "uptime": uptime})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := hc.db.Ping(ctx); err != nil {
		httputil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "down", "uptime": uptime})
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "ready", "database": "up", "uptime": uptime})
}
