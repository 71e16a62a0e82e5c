// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc usable with any router:
//
//	r.Post("/v1/validate/{field}", handler.Wrap(validate,
//		handler.WithBinders[handler.Context, validateRequest](
//			binder.Path(chi.URLParam),
//			binder.JSON(),
//		),
//		handler.WithErrorHandler[handler.Context, validateRequest](handler.NewErrorHandler(log)),
//	))
//
// Errors from binders or Render go to the ErrorHandler. Classify maps them to
// a status code: validator.ValidationErrors → 422 with per-field details,
// binder errors → 400 or 415, HTTPError → its own code, anything else → 500.
package handler
