// Package logger builds slog loggers with environment presets and
// context-derived attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "registration rejected", logger.Field("phone"))
//
// Attribute helpers (Error, Duration, Component, Field, Status) keep key
// names consistent between the HTTP service and the fieldcheck CLI.
package logger
