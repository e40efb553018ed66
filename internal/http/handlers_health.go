package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler answers readiness probes. With no checks it is a plain
// liveness probe; a failing check turns the answer into a 503.
func HealthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := healthStatus{Status: "ok"}
		code := http.StatusOK
		for name, check := range checks {
			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(checks))
			}
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		if r.Method == http.MethodHead {
			w.WriteHeader(code)
			return
		}
		WriteJSON(w, code, resp)
	}
}
