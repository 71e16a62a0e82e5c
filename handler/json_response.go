package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/carelink/pkg/binder"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

// ErrorBody is the JSON document of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error. Details holds per-field messages for
// validation errors.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as an ErrorBody with the status Classify picks.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := Classify(err)
	r := &jsonResponse{status: status, body: ErrorBody{Error: detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classify maps err to a status code and an ErrorDetail:
// validation errors → 422 with field details, binder content-type errors → 415,
// other binder errors → 400, HTTPError → its code, anything else → 500.
func Classify(err error) (int, ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, ErrorDetail{
			Code:    ErrUnprocessableEntity.Key,
			Message: "validation failed",
			Details: verrs.Map(),
		}
	}

	var httpErr HTTPError
	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		httpErr = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		httpErr = ErrBadRequest
	case errors.As(err, &httpErr):
	default:
		return http.StatusInternalServerError, ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: err.Error(),
		}
	}

	return httpErr.Code, ErrorDetail{Code: httpErr.Key, Message: err.Error()}
}
