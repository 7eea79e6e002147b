package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/garagekit/pkg/logger"
)

// Check is a named readiness dependency.
type Check struct {
	Name string
	Func func(context.Context) error
}

// Liveness always answers 200 "ALIVE".
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeHealth(w, http.StatusOK, "ALIVE")
	}
}

// Readiness answers 200 "READY" when every check passes and 503 "NOT_READY"
// at the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Noop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			if c.Func == nil {
				continue
			}
			if err := c.Func(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed",
					slog.String("check", c.Name), logger.Error(err))
				writeHealth(w, http.StatusServiceUnavailable, "NOT_READY")
				return
			}
		}
		writeHealth(w, http.StatusOK, "READY")
	}
}

func writeHealth(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
