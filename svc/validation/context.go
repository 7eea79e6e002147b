package validation

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/garagekit/handler"
	"github.com/dmitrymomot/garagekit/pkg/i18n"
	"github.com/dmitrymomot/garagekit/pkg/logger"
)

// requestContext is the handler context of every /v1 route.
type requestContext struct {
	handler.Context

	// lang is the catalog language negotiated for the request.
	lang    string
	outcome *outcome
}

// outcome is what a validating handler reports back to observed.
type outcome struct {
	valid     bool
	failures  int
	malformed bool
}

func (s *Service) newContext(w http.ResponseWriter, r *http.Request) *requestContext {
	return &requestContext{
		Context: handler.NewContext(w, r),
		lang:    s.catalog.Resolve(i18n.GetLocale(r.Context())),
	}
}

func (c *requestContext) record(valid bool, failures int) {
	c.outcome = &outcome{valid: valid, failures: failures}
}

func (c *requestContext) recordMalformed() {
	c.outcome = &outcome{malformed: true}
}

// observed records metrics and a debug line for every call whose handler
// reported an outcome. param is the route parameter naming the form or
// field kind; calls that never got that far (unknown names) are skipped.
func observed[R any](s *Service, param string) handler.Decorator[*requestContext, R] {
	return func(next handler.HandlerFunc[*requestContext, R]) handler.HandlerFunc[*requestContext, R] {
		return func(ctx *requestContext, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			if ctx.outcome == nil {
				return resp
			}

			name := chi.URLParam(ctx.Request(), param)
			if ctx.outcome.malformed {
				s.metrics.ObserveError(name)
				return resp
			}

			d := time.Since(start)
			s.metrics.ObserveResult(name, ctx.outcome.valid, ctx.outcome.failures, d)
			s.log.DebugContext(ctx, "validated",
				logger.Form(name),
				logger.Locale(ctx.lang),
				logger.Outcome(ctx.outcome.valid),
				logger.ErrorCount(ctx.outcome.failures),
				logger.Duration(d),
			)
			return resp
		}
	}
}
