package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/pkg/environment"
	"github.com/dmitrymomot/garagekit/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("debug suppressed at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithLevelName("debug")).Debug("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("app", "garagekit"))).Info("x")
		assert.Equal(t, "garagekit", decode(t, buf)["app"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "garagekit"), logger.WithOutput(buf))
		ctx := environment.WithContext(context.Background(), environment.Production)
		log.DebugContext(ctx, "hidden")
		log.InfoContext(ctx, "shown")

		entry := decode(t, buf)
		assert.Equal(t, "garagekit", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := environment.WithContext(context.Background(), environment.Development)
		logger.New(logger.WithEnvironment("", ""), logger.WithOutput(buf)).DebugContext(ctx, "shown")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("no environment in context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithEnvironment(environment.Staging, "garagekit"), logger.WithOutput(buf)).Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "garagekit", entry["service"])
		assert.NotContains(t, entry, "env")
	})
}

func TestContextExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			return logger.RequestID(v), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(nil, extractor))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(logger.Component("test")).InfoContext(ctx, "with id")

	entry := decode(t, buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "test", entry["component"])
}

func TestContextExtractorsKeyPrecedence(t *testing.T) {
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			return logger.RequestID(v), true
		}
		return slog.Attr{}, false
	}
	ctx := context.WithValue(context.Background(), ctxKey{}, "from-ctx")

	tests := []struct {
		name string
		log  func(*slog.Logger)
		want func(t *testing.T, entry map[string]any)
	}{
		{
			name: "record attribute wins",
			log:  func(l *slog.Logger) { l.InfoContext(ctx, "msg", logger.RequestID("explicit")) },
			want: func(t *testing.T, entry map[string]any) {
				assert.Equal(t, "explicit", entry["request_id"])
			},
		},
		{
			name: "logger attribute wins",
			log:  func(l *slog.Logger) { l.With(logger.RequestID("bound")).InfoContext(ctx, "msg") },
			want: func(t *testing.T, entry map[string]any) {
				assert.Equal(t, "bound", entry["request_id"])
			},
		},
		{
			name: "grouped logger nests extracted attribute",
			log: func(l *slog.Logger) {
				l.With(logger.RequestID("top")).WithGroup("job").InfoContext(ctx, "msg")
			},
			want: func(t *testing.T, entry map[string]any) {
				assert.Equal(t, "top", entry["request_id"])
				group, ok := entry["job"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "from-ctx", group["request_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(logger.New(logger.WithOutput(buf), logger.WithContextExtractors(extractor)))
			tt.want(t, decode(t, buf))
		})
	}
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "login", logger.Form("login").Value.String())
	assert.Equal(t, "vi", logger.Locale("vi").Value.String())
	assert.Equal(t, "invalid", logger.Outcome(false).Value.String())
	assert.Equal(t, "valid", logger.Outcome(true).Value.String())
	assert.Equal(t, int64(3), logger.ErrorCount(3).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}
