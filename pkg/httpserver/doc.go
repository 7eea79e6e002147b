// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns once ctx is cancelled or the process receives SIGINT/SIGTERM
// and in-flight requests have drained. Listen failures are wrapped with
// ErrStart and shutdown failures with ErrShutdown.
//
// Liveness and Readiness build the /health/live and /health/ready endpoints.
package httpserver
