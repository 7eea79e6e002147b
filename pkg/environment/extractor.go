package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor adds env to log records whose context carries an
// environment. Its signature matches logger.ContextExtractor.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", env.String()), true
		}
		return slog.Attr{}, false
	}
}
