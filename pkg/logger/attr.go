package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field names the form field a record is about.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
