package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id". An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the validated form or field kind.
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Locale records the language a response was rendered in.
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// Outcome records "valid" or "invalid".
func Outcome(valid bool) slog.Attr {
	if valid {
		return slog.String("outcome", "valid")
	}
	return slog.String("outcome", "invalid")
}

// ErrorCount records how many validation failures a result carried.
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
