package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize caps request bodies at 1 MB.
const DefaultMaxJSONSize int64 = 1 << 20

// JSONOption configures JSON.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxSize int64
}

// WithMaxSize overrides DefaultMaxJSONSize. Non-positive values are ignored.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// JSON returns a strict JSON body binder.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: %w (max %d bytes)", ErrFailedToParseJSON, ErrBodyTooLarge, cfg.maxSize)
		}

		return Decode(body, v)
	}
}

// Decode strictly decodes one JSON value from data into v and sanitizes
// every string it produced. Unknown fields, empty input and trailing data
// are ErrFailedToParseJSON.
func Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	Sanitize(v)
	return nil
}
