// Package validator holds the field validation rules shared by every carelink
// registration form: password, phone, full name, license number, bio, e-mail,
// name parts, custom specialty, years of experience, date of birth and gender.
//
// A field policy is an ordered slice of Rule values, each a Check func paired with
// a translation-friendly ValidationError. Order matters: Evaluate and First stop at
// the first failing rule, so exactly one reason is reported per value even when
// several rules are violated. Apply keeps the union-of-failures behaviour for
// callers that want every message.
//
// # Single values
//
//	outcome := validator.ValidatePassword("Abc123!@")
//	if !outcome.Valid {
//	    fmt.Println(outcome.Reason)
//	}
//
// Every ValidateX function has the shape of Func: it takes the raw string (absent
// values are "") and returns an Outcome. Registry maps field names to these
// functions for transports that receive the field name at runtime.
//
// # Forms
//
//	err := validator.Collect(
//	    validator.First(validator.EmailRules("email", form.Email)...),
//	    validator.First(validator.PasswordRules("password", form.Password)...),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // one message per failing field
//	}
//
// # Concurrency
//
// Validators keep no state and never mutate their input; they are safe for
// concurrent use. Date-of-birth rules take the current time as an argument.
package validator
