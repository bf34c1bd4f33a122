package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery keeps a panicking handler from taking the server down.
// The panic is logged together with the stack trace and counted.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.Errorf("recovered from panic on [%s %s]: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
