package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/carelink/handler"
	"github.com/dmitrymomot/carelink/pkg/binder"
	"github.com/dmitrymomot/carelink/pkg/clientip"
	"github.com/dmitrymomot/carelink/pkg/environment"
	"github.com/dmitrymomot/carelink/pkg/httpserver"
	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/ratelimiter"
	"github.com/dmitrymomot/carelink/pkg/requestid"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

var errNoValidators = errors.New("no field validators registered")

// Config is loaded from API_* environment variables.
type Config struct {
	// ProxyHeaders are the forwarding headers trusted for the client address.
	ProxyHeaders []string           `env:"API_PROXY_HEADERS" envSeparator:"," envDefault:"X-Forwarded-For,X-Real-IP"`
	RateLimit    ratelimiter.Config `envPrefix:"API_RATE_LIMIT_"`
}

// API serves the field validators and registration forms over HTTP.
type API struct {
	log          *slog.Logger
	registry     *validator.Registry
	env          environment.Environment
	proxyHeaders []string
	limiter      *ratelimiter.Bucket
}

// Option configures the API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithRegistry replaces the default registry, e.g. to pin its clock.
func WithRegistry(r *validator.Registry) Option {
	return func(a *API) {
		if r != nil {
			a.registry = r
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(a *API) { a.env = env }
}

// WithProxyHeaders sets the headers trusted for the client address. Without
// them the TCP peer address is used.
func WithProxyHeaders(headers ...string) Option {
	return func(a *API) { a.proxyHeaders = headers }
}

// WithRateLimit limits /v1 requests per client address.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(a *API) { a.limiter = b }
}

// NewRouter returns the HTTP handler of the service:
//
//	GET  /health                   liveness
//	GET  /ready                    readiness
//	GET  /v1/fields                registered field names
//	POST /v1/validate/{field}      {"value": "..."} -> outcome
//	POST /v1/registrations/{role}  form -> {"valid": true} or 422 with field errors
func NewRouter(opts ...Option) http.Handler {
	a := &API{
		log:      slog.New(slog.DiscardHandler),
		registry: validator.NewRegistry(),
		env:      environment.Development,
	}
	for _, opt := range opts {
		opt(a)
	}

	errorHandler := handler.NewErrorHandler(a.log.With(logger.Component("api")))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(a.proxyHeaders...),
		environment.Middleware(a.env),
		middleware.CleanPath,
		a.accessLog,
		middleware.Recoverer,
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.Get("/ready", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, clientKey,
				ratelimiter.WithLimitHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
					errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
				}),
				ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					errorHandler(handler.NewContext(w, r), fmt.Errorf("rate limit: %w", err))
				}),
			))
		}

		r.Get("/fields", handler.Wrap(
			handler.HandlerFunc[handler.Context, struct{}](a.fields),
			handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
		))
		r.Post("/validate/{field}", handler.Wrap(
			handler.HandlerFunc[handler.Context, validateRequest](a.validate),
			handler.WithBinders[handler.Context, validateRequest](binder.Path(chi.URLParam), binder.JSON()),
			handler.WithErrorHandler[handler.Context, validateRequest](errorHandler),
		))
		r.Post("/registrations/{role}", handler.Wrap(
			handler.HandlerFunc[handler.Context, registrationRequest](a.register),
			handler.WithBinders[handler.Context, registrationRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, registrationRequest](errorHandler),
		))
	})

	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func (a *API) ready(context.Context) error {
	if len(a.registry.Fields()) == 0 {
		return errNoValidators
	}
	return nil
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Status(ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
