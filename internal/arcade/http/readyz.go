package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/arcade/pkg/arcadesdk"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
)

// Pinger is the slice of store.Store readiness needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness
//	@Description	503 while the store cannot be reached.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	arcadesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	arcadesdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &arcadesdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, arcadesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
