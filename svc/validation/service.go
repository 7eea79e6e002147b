package validation

import (
	"log/slog"

	"github.com/dmitrymomot/garagekit/pkg/logger"
	"github.com/dmitrymomot/garagekit/pkg/messages"
	"github.com/dmitrymomot/garagekit/pkg/metrics"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Service holds what the HTTP handlers need to validate and localize.
type Service struct {
	catalog *messages.Catalog
	log     *slog.Logger
	metrics *metrics.Metrics
	clock   validator.Clock
	maxBody int64
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records every validation. Without it nothing is recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock fixes "now" for forms that compare against the current time.
func WithClock(c validator.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithMaxBodySize caps request bodies at n bytes. Non-positive values keep
// binder.DefaultMaxJSONSize.
func WithMaxBodySize(n int64) Option {
	return func(s *Service) { s.maxBody = n }
}

func New(catalog *messages.Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	s := &Service{
		catalog: catalog,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("validation"))
	return s, nil
}
