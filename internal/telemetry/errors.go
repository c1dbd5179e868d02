package telemetry

import "fmt"

// ErrorMissingEnvVariable error for missing environment variable.
type ErrorMissingEnvVariable struct {
	Vars []string
}

func (e *ErrorMissingEnvVariable) Error() string {
	return fmt.Sprintf("missing environment variable: %v", e.Vars)
}

// ErrorInvalidTraceParent is returned when the traceparent value cannot be parsed.
type ErrorInvalidTraceParent struct {
	Value  string
	Reason string
}

func (e *ErrorInvalidTraceParent) Error() string {
	return fmt.Sprintf("invalid traceparent %q: %s", e.Value, e.Reason)
}
