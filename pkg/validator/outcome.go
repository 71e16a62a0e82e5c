package validator

// Outcome is the result of validating a single candidate value.
// The zero value is not meaningful; use Valid or Invalid.
type Outcome struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Func validates one candidate value. Absent values are passed as "".
type Func func(value string) Outcome

// Valid returns the outcome of a value that passed every check.
func Valid() Outcome {
	return Outcome{Valid: true}
}

// Invalid returns the outcome of a value that violated a rule.
func Invalid(reason string) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) String() string {
	if o.Valid {
		return "valid"
	}
	return "invalid: " + o.Reason
}

// Evaluate runs the rules in order and reports the first failure.
// Rules may assume every rule before them has passed.
func Evaluate(rules ...Rule) Outcome {
	for _, rule := range rules {
		if !rule.Check() {
			return Invalid(rule.Error.Message)
		}
	}
	return Valid()
}
