package unit

import (
	"errors"
	"fmt"
)

// ErrLowConfidence is returned by the decoder when the OCR confidence or the
// extracted text length is below the hard quality floor. No specification is
// produced in that case; a low-confidence guess is worse than an honest
// failure.
var ErrLowConfidence = errors.New("input below confidence floor")

// SchemaViolationError reports a required schema position that could not be
// resolved to any code for the target family. It is a fatal build error: no
// model string is produced.
type SchemaViolationError struct {
	Family   string
	Position string
	Reason   string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("family %s: position %s unresolvable: %s", e.Family, e.Position, e.Reason)
}

// IsSchemaViolation reports whether err is (or wraps) a SchemaViolationError.
func IsSchemaViolation(err error) bool {
	var sv *SchemaViolationError
	return errors.As(err, &sv)
}
