package grist

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrFormat indicates malformed textual input to a decode or parse
	// operation (hex, base64, identifier text).
	ErrFormat = errors.New("malformed input")

	// ErrEntropy indicates the random source is unavailable.
	ErrEntropy = errors.New("entropy source unavailable")

	// ErrInvalidInput indicates a caller passed a structurally wrong value
	// to an operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDepthExceeded indicates a nested value exceeded the recursion
	// depth limit of a structural transform.
	ErrDepthExceeded = errors.New("recursion depth exceeded")
)

// FormatError reports malformed textual input to a decode or parse
// operation. Both implementation paths of an operation produce the same
// FormatError for the same invalid input.
type FormatError struct {
	Err    error  // Underlying sentinel error (ErrFormat)
	Op     string // Operation that rejected the input
	Reason string // What was wrong with the input
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Err.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ResourceError reports an unavailable external collaborator, currently
// only the entropy source.
type ResourceError struct {
	Err   error  // Underlying sentinel error (ErrEntropy)
	Op    string // Operation that needed the resource
	Cause error  // Original error from the resource
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// newFormatError creates a FormatError for decode/parse rejections.
func newFormatError(op, reason string) error {
	return &FormatError{
		Err:    ErrFormat,
		Op:     op,
		Reason: reason,
	}
}

// newResourceError creates a ResourceError for entropy failures.
func newResourceError(op string, cause error) error {
	return &ResourceError{
		Err:   ErrEntropy,
		Op:    op,
		Cause: cause,
	}
}
