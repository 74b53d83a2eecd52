package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"battery-delivery/pkg/httputil"
)

// Middleware отвечает 503, когда базовый контекст сервера уже отменен при остановке.
// Во время readiness drain запросы еще обслуживаются, 503 отдает только /healthcheck.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				_ = httputil.WriteError(w, "service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
