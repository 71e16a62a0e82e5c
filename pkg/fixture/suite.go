package fixture

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/carelink/pkg/sanitizer"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

// Transforms lists the sanitizers a transform suite may name.
var Transforms = map[string]sanitizer.Func{
	"capitalize_first": sanitizer.CapitalizeFirst,
	"capitalize_words": sanitizer.CapitalizeWords,
}

// Suite is a named corpus of cases for one field validator or transform.
type Suite struct {
	Name      string `yaml:"name"`
	Field     string `yaml:"field,omitempty"`
	Transform string `yaml:"transform,omitempty"`
	// Now pins the clock (YYYY-MM-DD) for date dependent validators.
	Now   string `yaml:"now,omitempty"`
	Cases []Case `yaml:"cases"`
}

// Case is a single (input, expected) pair.
type Case struct {
	Description string  `yaml:"description"`
	Input       string  `yaml:"input,omitempty"`
	Repeat      *Repeat `yaml:"repeat,omitempty"`
	Suffix      string  `yaml:"suffix,omitempty"`
	// Absent marks a null/undefined value. Validators receive "".
	Absent bool `yaml:"absent,omitempty"`
	// Expected is the reason of an invalid outcome; nil means valid.
	Expected *string `yaml:"expected,omitempty"`
	// Output is the result of a transform suite case.
	Output *string `yaml:"output,omitempty"`
}

// Repeat appends Text Times times to the case input.
type Repeat struct {
	Text  string `yaml:"text"`
	Times int    `yaml:"times"`
}

// Value returns the candidate value the case feeds to the validator.
func (c Case) Value() string {
	if c.Absent {
		return ""
	}
	var b strings.Builder
	b.WriteString(c.Input)
	if c.Repeat != nil {
		b.WriteString(strings.Repeat(c.Repeat.Text, c.Repeat.Times))
	}
	b.WriteString(c.Suffix)
	return b.String()
}

// Want returns the expected validation outcome.
func (c Case) Want() validator.Outcome {
	if c.Expected == nil {
		return validator.Valid()
	}
	return validator.Invalid(*c.Expected)
}

// Clock returns the pinned time of the suite, or false when it is not pinned.
func (s Suite) Clock() (time.Time, bool) {
	if s.Now == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(validator.DateLayout, s.Now)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Validate checks the suite document for structural errors.
func (s Suite) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidSuite)
	case s.Field == "" && s.Transform == "":
		return fmt.Errorf("%w: %s: one of field or transform is required", ErrInvalidSuite, s.Name)
	case s.Field != "" && s.Transform != "":
		return fmt.Errorf("%w: %s: field and transform are mutually exclusive", ErrInvalidSuite, s.Name)
	case len(s.Cases) == 0:
		return fmt.Errorf("%w: %s: no cases", ErrInvalidSuite, s.Name)
	}

	if s.Transform != "" {
		if _, ok := Transforms[s.Transform]; !ok {
			return fmt.Errorf("%w: %s: %w %q", ErrInvalidSuite, s.Name, ErrUnknownTransform, s.Transform)
		}
	}
	if s.Now != "" {
		if _, err := time.Parse(validator.DateLayout, s.Now); err != nil {
			return fmt.Errorf("%w: %s: now must be YYYY-MM-DD: %w", ErrInvalidSuite, s.Name, err)
		}
	}

	for i, c := range s.Cases {
		if c.Description == "" {
			return fmt.Errorf("%w: %s: case %d has no description", ErrInvalidSuite, s.Name, i+1)
		}
		if c.Repeat != nil && c.Repeat.Times < 0 {
			return fmt.Errorf("%w: %s: case %d repeats a negative number of times", ErrInvalidSuite, s.Name, i+1)
		}
		if s.Transform != "" && c.Output == nil {
			return fmt.Errorf("%w: %s: case %d has no output", ErrInvalidSuite, s.Name, i+1)
		}
		if s.Field != "" && c.Output != nil {
			return fmt.Errorf("%w: %s: case %d sets output on a validator suite", ErrInvalidSuite, s.Name, i+1)
		}
	}
	return nil
}
