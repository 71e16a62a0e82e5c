package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/carelink/pkg/environment"
	"github.com/dmitrymomot/carelink/pkg/logger"
)

// NewErrorHandler returns an ErrorHandler that logs the error and renders it
// with JSONError. Client errors log at warn, server errors at error. In
// production the message of a 5xx response is replaced by the status text.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, detail := Classify(err)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
			if environment.IsProduction(ctx) {
				detail.Message = http.StatusText(status)
			}
		}

		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("handler"),
		)

		resp := jsonResponse{status: status, body: ErrorBody{Error: detail}}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}
