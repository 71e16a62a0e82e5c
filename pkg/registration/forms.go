package registration

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/carelink/pkg/sanitizer"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

// Role names a registration form.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Roles lists every role with a registration form.
func Roles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleAdmin}
}

// ParseRole matches s against the known roles, ignoring case and surrounding spaces.
func ParseRole(s string) (Role, error) {
	role := Role(sanitizer.TrimToLower(s))
	for _, r := range Roles() {
		if r == role {
			return role, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// normalizers holds the capitalization the sign-up pages apply while the user
// types, plus the e-mail trim done on submit. Other fields are validated as typed.
var normalizers = sanitizer.Fields{
	validator.FieldEmail:           sanitizer.Trim,
	validator.FieldFirstName:       sanitizer.CapitalizeFirst,
	validator.FieldLastName:        sanitizer.CapitalizeFirst,
	validator.FieldFullName:        sanitizer.CapitalizeWords,
	validator.FieldCustomSpecialty: sanitizer.CapitalizeWords,
}

// Form is implemented by every registration form.
type Form interface {
	// Normalize applies the capitalization the sign-up pages apply while typing.
	Normalize()
	// Validate returns nil or validator.ValidationErrors with one message per failing field.
	Validate(now time.Time) error
}

// Account holds the credentials and contact fields every role submits.
type Account struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (a *Account) normalize() {
	a.Email = normalizers.Apply(validator.FieldEmail, a.Email)
}

func (a Account) results() []error {
	return []error{
		validator.First(validator.EmailRules(validator.FieldEmail, a.Email)...),
		validator.First(validator.PhoneRules(validator.FieldPhone, a.Phone)...),
		validator.First(validator.PasswordRules(validator.FieldPassword, a.Password)...),
		validator.First(validator.PasswordConfirmation(validator.FieldPasswordConfirm, a.Password, a.PasswordConfirm)),
	}
}

// Person holds the split name the patient and doctor forms ask for.
type Person struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
}

func (p *Person) normalize() {
	p.FirstName = normalizers.Apply(validator.FieldFirstName, p.FirstName)
	p.MiddleName = normalizers.Apply(validator.FieldMiddleName, p.MiddleName)
	p.LastName = normalizers.Apply(validator.FieldLastName, p.LastName)
}

func (p Person) results() []error {
	return []error{
		validator.First(validator.PersonNameRules(validator.FieldFirstName, "First name", p.FirstName, false)...),
		validator.First(validator.PersonNameRules(validator.FieldMiddleName, "Middle name", p.MiddleName, true)...),
		validator.First(validator.PersonNameRules(validator.FieldLastName, "Last name", p.LastName, false)...),
	}
}

// PatientForm is submitted by patients signing up.
type PatientForm struct {
	Person
	Account
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

func (f *PatientForm) Normalize() {
	f.Person.normalize()
	f.Account.normalize()
}

func (f *PatientForm) Validate(now time.Time) error {
	results := append(f.Person.results(), f.Account.results()...)
	results = append(results,
		validator.First(validator.PatientDateOfBirth().Rules(validator.FieldDateOfBirth, f.DateOfBirth, now)...),
		validator.First(validator.GenderRules(validator.FieldGender, f.Gender)...),
	)
	return validator.Collect(results...)
}

// DoctorForm is submitted by doctors applying to the portal.
type DoctorForm struct {
	Person
	Account
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	Specialty         string `json:"specialty"`
	CustomSpecialty   string `json:"custom_specialty,omitempty"`
	LicenseNumber     string `json:"license_number"`
	YearsOfExperience string `json:"years_of_experience"`
	Bio               string `json:"bio,omitempty"`
}

func (f *DoctorForm) Normalize() {
	f.Person.normalize()
	f.Account.normalize()
	if f.Specialty == validator.SpecialtyOther {
		f.CustomSpecialty = normalizers.Apply(validator.FieldCustomSpecialty, f.CustomSpecialty)
	}
}

func (f *DoctorForm) Validate(now time.Time) error {
	results := append(f.Person.results(), f.Account.results()...)
	results = append(results,
		validator.First(validator.DoctorDateOfBirth().Rules(validator.FieldDateOfBirth, f.DateOfBirth, now)...),
		validator.First(validator.GenderRules(validator.FieldGender, f.Gender)...),
		validator.First(validator.SpecialtyRules(validator.FieldSpecialty, f.Specialty)...),
		validator.First(validator.LicenseNumberRules(validator.FieldLicenseNumber, f.LicenseNumber)...),
		validator.First(validator.ExperienceRules(validator.FieldExperience, f.YearsOfExperience)...),
		validator.First(validator.BioRules(validator.FieldBio, f.Bio)...),
	)
	if f.Specialty == validator.SpecialtyOther {
		results = append(results,
			validator.First(validator.CustomSpecialtyRules(validator.FieldCustomSpecialty, f.CustomSpecialty)...))
	}
	return validator.Collect(results...)
}

// AdminForm is submitted when an administrator account is created.
type AdminForm struct {
	FullName string `json:"full_name"`
	Account
}

func (f *AdminForm) Normalize() {
	f.FullName = normalizers.Apply(validator.FieldFullName, f.FullName)
	f.Account.normalize()
}

func (f *AdminForm) Validate(now time.Time) error {
	results := append([]error{
		validator.First(validator.FullNameRules(validator.FieldFullName, f.FullName)...),
	}, f.Account.results()...)
	return validator.Collect(results...)
}

// NewForm returns an empty form for role, ready to be decoded into.
func NewForm(role Role) (Form, error) {
	switch role {
	case RolePatient:
		return &PatientForm{}, nil
	case RoleDoctor:
		return &DoctorForm{}, nil
	case RoleAdmin:
		return &AdminForm{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
}
