package unit

import "fmt"

// Severity grades a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic describes a single issue found while decoding, building or
// validating a specification. Diagnostics are pure outputs and never mutate
// the specification they describe.
type Diagnostic struct {
	// Severity is "error" or "warning".
	Severity Severity `json:"severity"`
	// Field is the dotted path of the field the diagnostic refers to.
	Field string `json:"field"`
	// Message is a human-readable description of the issue.
	Message string `json:"message"`
	// Suggestion optionally tells the caller what to try next,
	// e.g. "retake photo" or "widen tolerance".
	Suggestion string `json:"suggestion,omitempty"`
}

// Warn builds a warning diagnostic.
func Warn(field, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Err builds an error diagnostic.
func Err(field, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Field: field, Message: fmt.Sprintf(format, args...)}
}

// HasErrors reports whether any diagnostic in the list is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
