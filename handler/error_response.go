package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Fail returns a Response that hands err to the configured ErrorHandler
// instead of rendering anything itself.
func Fail(err error) Response {
	return errorResponse{err: err}
}
