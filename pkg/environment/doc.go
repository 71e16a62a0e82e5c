// Package environment carries the deployment stage (development, staging,
// production) through request contexts and log records.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// The API error handler uses IsProduction to decide whether internal error
// details may be returned to the client.
package environment
