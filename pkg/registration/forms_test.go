package registration_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/carelink/pkg/registration"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

var now = time.Date(2025, time.November, 13, 10, 0, 0, 0, time.UTC)

func validAccount() registration.Account {
	return registration.Account{
		Email:           "jane@example.com",
		Phone:           "1234567890",
		Password:        "Secure#2024Pass",
		PasswordConfirm: "Secure#2024Pass",
	}
}

func validPatient() registration.PatientForm {
	return registration.PatientForm{
		Person:      registration.Person{FirstName: "Jane", LastName: "Doe"},
		Account:     validAccount(),
		DateOfBirth: "1990-05-20",
		Gender:      "Female",
	}
}

func validDoctor() registration.DoctorForm {
	return registration.DoctorForm{
		Person:            registration.Person{FirstName: "Gregory", MiddleName: "Paul", LastName: "House"},
		Account:           validAccount(),
		DateOfBirth:       "1980-01-01",
		Gender:            "Male",
		Specialty:         "Cardiology",
		LicenseNumber:     "MD-12345/NY",
		YearsOfExperience: "15",
	}
}

func validAdmin() registration.AdminForm {
	return registration.AdminForm{FullName: "Ada Lovelace", Account: validAccount()}
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs, "expected validation errors, got %v", err)
	return verrs.Map()
}

func TestPatientForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		form := validPatient()
		assert.NoError(t, form.Validate(now))
	})

	t.Run("empty form reports the first failure of every required field", func(t *testing.T) {
		var form registration.PatientForm
		assert.Equal(t, map[string][]string{
			"first_name":    {"First name is required"},
			"last_name":     {"Last name is required"},
			"email":         {"Email is required"},
			"phone":         {"Phone number is required"},
			"password":      {"Password is required"},
			"date_of_birth": {"Date of birth is required"},
			"gender":        {"Gender is required"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("password mismatch is reported on the confirmation", func(t *testing.T) {
		form := validPatient()
		form.PasswordConfirm = "Secure#2024Pas"
		assert.Equal(t, map[string][]string{
			"password_confirm": {"Passwords do not match"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("born today", func(t *testing.T) {
		form := validPatient()
		form.DateOfBirth = "2025-11-13"
		assert.Equal(t, map[string][]string{
			"date_of_birth": {"Date of birth must be before today"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("optional middle name is still checked when given", func(t *testing.T) {
		form := validPatient()
		form.MiddleName = "J"
		assert.Equal(t, map[string][]string{
			"middle_name": {"Middle name must be at least 2 characters"},
		}, fieldErrors(t, form.Validate(now)))
	})
}

func TestDoctorForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		form := validDoctor()
		assert.NoError(t, form.Validate(now))
	})

	t.Run("doctor age window differs from patient", func(t *testing.T) {
		form := validDoctor()
		form.DateOfBirth = "2001-01-01"
		assert.Equal(t, map[string][]string{
			"date_of_birth": {"You must be at least 25 years old"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("specialty is required", func(t *testing.T) {
		form := validDoctor()
		form.Specialty = ""
		assert.Equal(t, map[string][]string{
			"specialty": {"Specialty is required"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("custom specialty only applies to Other", func(t *testing.T) {
		form := validDoctor()
		form.CustomSpecialty = "x"
		require.NoError(t, form.Validate(now))

		form.Specialty = validator.SpecialtyOther
		form.CustomSpecialty = ""
		assert.Equal(t, map[string][]string{
			"custom_specialty": {`Custom specialty is required when "Other" is selected`},
		}, fieldErrors(t, form.Validate(now)))

		form.CustomSpecialty = "Sports Medicine"
		assert.NoError(t, form.Validate(now))
	})

	t.Run("several fields fail at once", func(t *testing.T) {
		form := validDoctor()
		form.Phone = "123-456-7890"
		form.LicenseNumber = "MD 123"
		form.YearsOfExperience = "5.5"
		form.Bio = "<b>Hi</b>"
		assert.Equal(t, map[string][]string{
			"phone":               {"Phone number must contain only digits (0-9)"},
			"license_number":      {"License number must contain only letters, numbers, hyphens, or slashes"},
			"years_of_experience": {"Years of experience must be a whole number (no decimals)"},
			"bio":                 {"Bio cannot contain HTML tags or scripts"},
		}, fieldErrors(t, form.Validate(now)))
	})

	t.Run("bio is optional", func(t *testing.T) {
		form := validDoctor()
		form.Bio = ""
		require.NoError(t, form.Validate(now))

		form.Bio = strings.Repeat("Experienced cardiologist. ", 3)
		assert.NoError(t, form.Validate(now))
	})
}

func TestAdminForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		form := validAdmin()
		assert.NoError(t, form.Validate(now))
	})

	t.Run("full name and account rules", func(t *testing.T) {
		form := validAdmin()
		form.FullName = "John  Doe"
		form.Email = "john doe@example.com"
		form.Password = "password123!"
		form.PasswordConfirm = "password123!"
		assert.Equal(t, map[string][]string{
			"full_name": {"Full name cannot contain consecutive spaces"},
			"email":     {"Email must not contain spaces"},
			"password":  {"Password must contain at least one uppercase letter (A-Z)"},
		}, fieldErrors(t, form.Validate(now)))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("patient", func(t *testing.T) {
		form := validPatient()
		form.FirstName = "jANE"
		form.MiddleName = "marie"
		form.LastName = "o'brien"
		form.Email = "  jane@example.com "
		form.Normalize()

		assert.Equal(t, "Jane", form.FirstName)
		assert.Equal(t, "marie", form.MiddleName)
		assert.Equal(t, "O'brien", form.LastName)
		assert.Equal(t, "jane@example.com", form.Email)
		assert.NoError(t, form.Validate(now))
	})

	t.Run("names and credentials are not trimmed", func(t *testing.T) {
		form := validPatient()
		form.FirstName = " jane"
		form.Phone = " 1234567890"
		form.Password = " Secure#2024Pass"
		form.PasswordConfirm = " Secure#2024Pass"
		form.Normalize()

		assert.Equal(t, " jane", form.FirstName)
		assert.Equal(t, " 1234567890", form.Phone)
		assert.Equal(t, " Secure#2024Pass", form.Password)

		errs := fieldErrors(t, form.Validate(now))
		assert.Contains(t, errs, "phone")
	})

	t.Run("doctor custom specialty", func(t *testing.T) {
		form := validDoctor()
		form.CustomSpecialty = "sports medicine"
		form.Normalize()
		assert.Equal(t, "sports medicine", form.CustomSpecialty)

		form.Specialty = validator.SpecialtyOther
		form.Normalize()
		assert.Equal(t, "Sports Medicine", form.CustomSpecialty)
	})

	t.Run("admin full name", func(t *testing.T) {
		form := validAdmin()
		form.FullName = "ada lovelace-byron"
		form.Normalize()
		assert.Equal(t, "Ada Lovelace-byron", form.FullName)
	})
}

func TestForms_JSON(t *testing.T) {
	t.Parallel()

	body := `{
		"first_name": "Jane",
		"last_name": "Doe",
		"email": "jane@example.com",
		"phone": "1234567890",
		"password": "Secure#2024Pass",
		"password_confirm": "Secure#2024Pass",
		"date_of_birth": "1990-05-20",
		"gender": "Female"
	}`

	var form registration.PatientForm
	require.NoError(t, json.Unmarshal([]byte(body), &form))
	assert.Equal(t, validPatient(), form)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, role := range registration.Roles() {
		got, err := registration.ParseRole(" " + strings.ToUpper(string(role)) + " ")
		require.NoError(t, err)
		assert.Equal(t, role, got)
	}

	_, err := registration.ParseRole("nurse")
	assert.ErrorIs(t, err, registration.ErrUnknownRole)
}

func TestNewForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role registration.Role
		want registration.Form
	}{
		{registration.RolePatient, &registration.PatientForm{}},
		{registration.RoleDoctor, &registration.DoctorForm{}},
		{registration.RoleAdmin, &registration.AdminForm{}},
	}
	for _, tt := range tests {
		got, err := registration.NewForm(tt.role)
		require.NoError(t, err)
		assert.IsType(t, tt.want, got)
	}

	_, err := registration.NewForm("nurse")
	assert.ErrorIs(t, err, registration.ErrUnknownRole)
}
