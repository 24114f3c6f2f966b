package errors

import (
	"fmt"
)

// ConfigurationError indicates a missing or invalid required parameter,
// detected at operator construction time, before anything executes.
type ConfigurationError struct {
	Param   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("the required parameter '%s' is empty", e.Param)
}

// NewRequiredParamError reports an empty required parameter by name.
func NewRequiredParamError(param string) *ConfigurationError {
	return &ConfigurationError{Param: param}
}

// ValidationError indicates a malformed or ambiguous transfer job body,
// detected before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DeferredError carries the message of an error completion event surfaced
// from a deferred execution.
type DeferredError struct {
	Message string
}

func (e *DeferredError) Error() string {
	return e.Message
}
