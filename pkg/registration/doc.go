// Package registration validates the patient, doctor and admin sign-up forms.
//
// Every form reuses the single-field policies of package validator, so a field
// such as phone or password is judged identically whatever form submits it.
// Only date of birth differs per role.
//
//	form := registration.PatientForm{FirstName: "jane", ...}
//	form.Normalize()
//	if err := form.Validate(time.Now()); err != nil {
//		errs := validator.ExtractValidationErrors(err)
//		// errs.Map() -> {"phone": ["Phone number must be at least 10 digits"]}
//	}
//
// Validate reports at most one message per field: the first rule the field violates.
package registration
