package reconcile

import (
	"errors"
	"fmt"

	"gameframe/core/registry"
)

var (
	// ErrMissingPayload means no provider supplied data usable for a row.
	// The row is skipped, it is not a failure.
	ErrMissingPayload = errors.New("missing payload")

	// ErrMalformedPayload matches every *MalformedPayloadError.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrQualityRejected means a row failed a blacklist, relevance or
	// validity check.
	ErrQualityRejected = errors.New("quality rejected")

	// ErrAborted means the operator declined a destructive operation.
	// The registry is untouched and the command still succeeds.
	ErrAborted = errors.New("operation aborted by operator")
)

// MalformedPayloadError reports a present payload lacking fields its schema
// requires.
type MalformedPayloadError struct {
	Provider registry.Provider
	Kind     registry.Kind
	// Fields lists the offending schema fields, when known.
	Fields []string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("malformed %s %s payload: fields %v: %v", e.Provider, e.Kind, e.Fields, e.Err)
	}
	return fmt.Sprintf("malformed %s %s payload: %v", e.Provider, e.Kind, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedPayload) hold for any MalformedPayloadError.
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

func rejected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrQualityRejected, fmt.Sprintf(format, args...))
}
