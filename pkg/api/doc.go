// Package api exposes the field validators and the registration forms over
// HTTP using chi.
//
//	router := api.NewRouter(
//		api.WithLogger(log),
//		api.WithEnvironment(env),
//	)
//	srv.Run(ctx, router)
//
// POST /v1/validate/{field} answers with the outcome of a single validator,
// so the sign-up pages can check one field as the user types.
// POST /v1/registrations/{role} validates a whole form, reporting the first
// violated rule of every invalid field with status 422.
package api
