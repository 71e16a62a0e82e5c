// Package httpserver runs the validation API with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns once ctx is cancelled or the process receives SIGINT or
// SIGTERM and in-flight requests have finished or the shutdown timeout expired.
package httpserver
