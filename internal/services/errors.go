package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAIInvocation matches every failure of the route simulation call,
	// schema violations included.
	ErrAIInvocation = errors.New("ai invocation failed")

	ErrVehicleNotFound = errors.New("vehicle not found")
)

// AIInvocationError wraps a transport or backend failure.
type AIInvocationError struct {
	Op    string
	Cause error
}

func (e *AIInvocationError) Error() string {
	return fmt.Sprintf("ai invocation failed during %s: %v", e.Op, e.Cause)
}

func (e *AIInvocationError) Unwrap() []error {
	return []error{ErrAIInvocation, e.Cause}
}

// SchemaValidationError reports a backend reply that does not match the
// expected result structure.
type SchemaValidationError struct {
	Violations []string
	Raw        string
}

func (e *SchemaValidationError) Error() string {
	return "ai response does not match the route simulation schema: " + strings.Join(e.Violations, "; ")
}

func (e *SchemaValidationError) Unwrap() error {
	return ErrAIInvocation
}
