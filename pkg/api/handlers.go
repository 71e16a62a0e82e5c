package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/carelink/handler"
	"github.com/dmitrymomot/carelink/pkg/binder"
	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/registration"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

type fieldsResponse struct {
	Fields []string `json:"fields"`
}

func (a *API) fields(handler.Context, struct{}) handler.Response {
	return handler.JSON(fieldsResponse{Fields: a.registry.Fields()})
}

type validateRequest struct {
	Field string `path:"field" json:"-"`
	// A JSON null binds as "", which validators treat as absent.
	Value string `json:"value"`
}

func (a *API) validate(ctx handler.Context, req validateRequest) handler.Response {
	outcome, err := a.registry.Validate(req.Field, req.Value)
	if err != nil {
		return handler.Fail(fmt.Errorf("%w: %w", handler.ErrNotFound, err))
	}

	a.log.DebugContext(ctx, "field validated",
		logger.Field(req.Field),
		slog.Bool("valid", outcome.Valid),
	)
	return handler.JSON(outcome)
}

type registrationRequest struct {
	Role string `path:"role"`
}

// RegistrationResult is the body of /v1/registrations responses.
type RegistrationResult struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func (a *API) register(ctx handler.Context, req registrationRequest) handler.Response {
	role, err := registration.ParseRole(req.Role)
	if err != nil {
		return handler.Fail(fmt.Errorf("%w: %w", handler.ErrNotFound, err))
	}

	form, err := registration.NewForm(role)
	if err != nil {
		return handler.Fail(err)
	}
	if err := binder.JSON()(ctx.Request(), form); err != nil {
		return handler.Fail(err)
	}

	form.Normalize()
	if err := form.Validate(a.registry.Now()); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			return handler.Fail(err)
		}

		a.log.InfoContext(ctx, "registration rejected",
			slog.String("role", string(role)),
			slog.Any("fields", verrs.Fields()),
		)
		return handler.JSON(
			RegistrationResult{Valid: false, Errors: verrs.Map()},
			handler.WithJSONStatus(http.StatusUnprocessableEntity),
		)
	}

	a.log.InfoContext(ctx, "registration accepted", slog.String("role", string(role)))
	return handler.JSON(RegistrationResult{Valid: true})
}
