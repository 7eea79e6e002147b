package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/garagekit/pkg/logger"
	"github.com/dmitrymomot/garagekit/pkg/requestid"
)

// NewErrorHandler logs the failure and renders the JSON error envelope.
// Validation failures log at debug, other client errors at warn and server
// errors at error. The request ID travels in meta.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.Noop()
	}
	return func(ctx C, err error) {
		r := ctx.Request()
		status, detail := ErrorToDetail(err)

		log.Log(ctx, levelFor(status, detail), "request failed",
			logger.Component("http"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			logger.Error(err),
		)

		var opts []JSONOption
		if id := requestid.FromContext(ctx); id != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"request_id": id}))
		}
		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}

func levelFor(status int, detail *ErrorDetail) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case detail != nil && detail.Code == "validation_error":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
