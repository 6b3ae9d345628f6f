// Package remap converts survey distributions between binnings.
package remap

import "fmt"

// ConfigurationError reports an authoring mistake in the fixed data or rules,
// e.g. a source bin whose rule fractions do not sum to 1.0. Rendering with such
// a rule set would misrepresent the data, so callers must treat this as fatal.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// DivisionError reports a percentage conversion attempted over a zero total.
type DivisionError struct {
	Message string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("division error: %s", e.Message)
}
