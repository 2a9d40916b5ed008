package cfgvar

import (
	"fmt"
)

// BadInputError is the single error kind reported for malformed or
// out-of-domain variable values. It always names the parameter and carries
// the literal offending value so callers can present an actionable message.
type BadInputError struct {
	// Var is the configuration parameter name, e.g. "temp".
	Var string
	// Raw is the offending raw value as supplied by the caller.
	Raw string

	msg string
}

func (e *BadInputError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %s", e.Var, e.Raw, e.msg)
}
