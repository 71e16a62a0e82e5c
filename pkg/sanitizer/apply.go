package sanitizer

// Func normalizes one submitted value.
type Func func(string) string

// Compose returns a Func running transforms left to right. With no
// transforms the value is returned as typed.
func Compose(transforms ...Func) Func {
	return func(value string) string {
		for _, transform := range transforms {
			value = transform(value)
		}
		return value
	}
}

// Fields maps form field names to the Func that normalizes them before
// validation. Fields without an entry are validated exactly as submitted.
type Fields map[string]Func

// Apply normalizes value as the named field.
func (f Fields) Apply(field, value string) string {
	if fn, ok := f[field]; ok && fn != nil {
		return fn(value)
	}
	return value
}
