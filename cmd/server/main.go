package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrymomot/carelink/pkg/api"
	"github.com/dmitrymomot/carelink/pkg/clientip"
	"github.com/dmitrymomot/carelink/pkg/config"
	"github.com/dmitrymomot/carelink/pkg/environment"
	"github.com/dmitrymomot/carelink/pkg/httpserver"
	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/ratelimiter"
	"github.com/dmitrymomot/carelink/pkg/requestid"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

func main() {
	var (
		app     config.App
		httpCfg httpserver.Config
		apiCfg  api.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&httpCfg)
	config.MustLoad(&apiCfg)

	l, err := app.Logger(logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
		environment.LoggerExtractor(),
	))
	if err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	logger.SetAsDefault(l)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, apiCfg.RateLimit)
	if err != nil {
		log.Fatalf("Invalid rate limit configuration: %v", err)
	}

	router := api.NewRouter(
		api.WithLogger(l),
		api.WithEnvironment(app.Environment()),
		api.WithRegistry(validator.NewRegistry()),
		api.WithProxyHeaders(apiCfg.ProxyHeaders...),
		api.WithRateLimit(limiter),
	)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(l))
	if err := srv.Run(context.Background(), router); err != nil {
		l.Error("server stopped", logger.Error(err))
		store.Close()
		os.Exit(1)
	}
}
