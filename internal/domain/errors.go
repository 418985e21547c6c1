package domain

import "fmt"

// ValidationError reports untrusted input that failed a domain rule.
// The message embeds the offending value and is meant for operators and
// end users, not for machine parsing.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is not a valid subscriber %s.", e.Value, e.Field)
}
