package validation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/garagekit/handler"
	"github.com/dmitrymomot/garagekit/pkg/binder"
	"github.com/dmitrymomot/garagekit/pkg/clientip"
	"github.com/dmitrymomot/garagekit/pkg/httpserver"
	"github.com/dmitrymomot/garagekit/pkg/i18n"
	"github.com/dmitrymomot/garagekit/pkg/requestid"
)

// Register mounts the /v1 routes on r.
func (s *Service) Register(r chi.Router) {
	bind := binder.JSON(binder.WithMaxSize(s.maxBody))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/forms", route(s, s.listForms))
		r.Post("/forms/{form}", route(s, s.validateForm,
			handler.WithBinders[*requestContext, json.RawMessage](bind),
			handler.WithDecorators(observed[json.RawMessage](s, "form"))))

		r.Get("/fields", route(s, s.listFields))
		r.Post("/fields/{kind}", route(s, s.validateField,
			handler.WithBinders[*requestContext, FieldRequest](bind),
			handler.WithDecorators(observed[FieldRequest](s, "kind"))))

		r.Get("/messages/{lang}", route(s, s.exportMessages))
	})
}

// route wraps h with the service context and the logging error handler.
func route[R any](s *Service, h handler.HandlerFunc[*requestContext, R], opts ...handler.WrapOption[*requestContext, R]) http.HandlerFunc {
	base := []handler.WrapOption[*requestContext, R]{
		handler.WithContextFactory[*requestContext, R](s.newContext),
		handler.WithErrorHandler[*requestContext, R](handler.NewErrorHandler[*requestContext](s.log)),
	}
	return handler.Wrap(h, append(base, opts...)...)
}

// NewRouter builds the full HTTP surface: middleware, health checks,
// /metrics when gatherer is set, and the /v1 routes.
func NewRouter(s *Service, gatherer prometheus.Gatherer, checks ...httpserver.Check) http.Handler {
	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(s.catalog.Languages()...))
	fallback := s.catalog.Translator().DefaultLanguage()

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(),
		i18n.Middleware(func(req *http.Request) string {
			if lang := extract(req); lang != "" {
				return lang
			}
			return fallback
		}),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, req)
	})

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(s.log, checks...))
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	s.Register(r)
	return r
}
