package registration

import "errors"

// ErrUnknownRole is returned for a role with no registration form.
var ErrUnknownRole = errors.New("unknown registration role")
