package validator

import (
	"fmt"
	"slices"
	"time"
)

// Field names shared by the registration forms, the HTTP API and the fixtures.
const (
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldPhone           = "phone"
	FieldFullName        = "full_name"
	FieldFirstName       = "first_name"
	FieldMiddleName      = "middle_name"
	FieldLastName        = "last_name"
	FieldLicenseNumber   = "license_number"
	FieldBio             = "bio"
	FieldEmail           = "email"
	FieldSpecialty       = "specialty"
	FieldCustomSpecialty = "custom_specialty"
	FieldExperience      = "years_of_experience"
	FieldDateOfBirth     = "date_of_birth"
	FieldGender          = "gender"

	// Date of birth differs per role, so the registry exposes both policies.
	FieldDoctorDateOfBirth  = "doctor_date_of_birth"
	FieldPatientDateOfBirth = "patient_date_of_birth"
)

// Registry maps field names to single-value validators.
type Registry struct {
	now   func() time.Time
	funcs map[string]Func
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock sets the time source used by date-of-birth validators.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithFunc registers or replaces the validator for a field.
func WithFunc(field string, fn Func) RegistryOption {
	if field == "" || fn == nil {
		panic("validator: WithFunc requires a field name and a function")
	}
	return func(r *Registry) {
		r.funcs[field] = fn
	}
}

// NewRegistry returns a registry with every built-in field validator.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{now: time.Now}
	r.funcs = map[string]Func{
		FieldPassword:        ValidatePassword,
		FieldPhone:           ValidatePhone,
		FieldFullName:        ValidateFullName,
		FieldFirstName:       ValidateFirstName,
		FieldMiddleName:      ValidateMiddleName,
		FieldLastName:        ValidateLastName,
		FieldLicenseNumber:   ValidateLicenseNumber,
		FieldBio:             ValidateBio,
		FieldEmail:           ValidateEmail,
		FieldCustomSpecialty: ValidateCustomSpecialty,
		FieldExperience:      ValidateExperience,
		FieldGender:          ValidateGender,
		FieldDoctorDateOfBirth: func(v string) Outcome {
			return DoctorDateOfBirth().Validate(v, r.now())
		},
		FieldPatientDateOfBirth: func(v string) Outcome {
			return PatientDateOfBirth().Validate(v, r.now())
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the validator registered for field.
func (r *Registry) Lookup(field string) (Func, bool) {
	fn, ok := r.funcs[field]
	return fn, ok
}

// Validate runs the validator registered for field.
func (r *Registry) Validate(field, value string) (Outcome, error) {
	fn, ok := r.Lookup(field)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return fn(value), nil
}

// Fields returns the registered field names in sorted order.
func (r *Registry) Fields() []string {
	fields := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		fields = append(fields, name)
	}
	slices.Sort(fields)
	return fields
}

// Now returns the registry's current time.
func (r *Registry) Now() time.Time {
	return r.now()
}
