// Package binder binds HTTP request data to Go structs.
//
// Two binders are provided: JSON for strict request bodies and Path for
// router path parameters. Both have the signature expected by
// handler.WithBinder and handler.WithBinders and are applied in order.
//
//	type validateRequest struct {
//		Field string `path:"field" json:"-"`
//		Value string `json:"value"`
//	}
//
//	h := handler.Wrap(validate,
//		handler.WithBinders[handler.Context, validateRequest](
//			binder.Path(chi.URLParam),
//			binder.JSON(),
//		),
//	)
//
// Failures wrap one of the package errors (ErrMissingContentType,
// ErrUnsupportedMediaType, ErrFailedToParseJSON, ErrFailedToParsePath) so
// callers can map them with errors.Is.
package binder
