// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a fresh UUID, stores it in the request context and echoes it in
// the response. LoggerExtractor copies the ID onto every slog record written
// with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
