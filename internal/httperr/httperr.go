// Package httperr classifies HTTP failures so the transport layer can
// decide which requests are worth retrying.
package httperr

import "fmt"

// Category determines how a failure is handled by retry logic.
type Category int

const (
	// Recoverable failures may be retried with exponential backoff.
	// Examples: 5xx responses, network timeouts, connection resets.
	Recoverable Category = iota

	// Irrecoverable failures fail immediately without retry.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error wraps a failure with categorization metadata.
type Error struct {
	Category   Category
	StatusCode int // 0 for non-HTTP failures
	Op         string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s: HTTP %d", e.Category, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Err }

// ClassifyStatus maps an HTTP status code to a retry category.
// 408 and 429 are the only retryable client errors; every 5xx is
// treated as transient.
func ClassifyStatus(status int) Category {
	switch {
	case status == 408, status == 429:
		return Recoverable
	case status >= 400 && status < 500:
		return Irrecoverable
	case status >= 500 && status < 600:
		return Recoverable
	default:
		// Unexpected codes: be conservative and retry.
		return Recoverable
	}
}

// FromStatus builds a classified error for a non-success response.
func FromStatus(op string, status int) *Error {
	return &Error{
		Category:   ClassifyStatus(status),
		StatusCode: status,
		Op:         op,
		Err:        fmt.Errorf("%s: status %d", op, status),
	}
}

// Network builds a classified error for a transport-level failure.
// Network failures are always recoverable as they may be transient.
func Network(op string, err error) *Error {
	return &Error{
		Category: Recoverable,
		Op:       op,
		Err:      fmt.Errorf("%s: %w", op, err),
	}
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Category == Irrecoverable
	}
	return false
}
