package adapter

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks a write attempted against a read-only backend. It is
// raised before any network request is made, so the UI can hide retry
// affordances for it. Match with errors.Is.
var ErrUnsupported = errors.New("operation not supported by this backend")

// Unsupported wraps ErrUnsupported with the failing operation's name.
func Unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

// TransportError is a network-level failure: connection refused, timeout,
// malformed response. It is never auto-retried by this layer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is an explicit failure reported by the server: Subsonic
// status=failed, or a native HTTP error status. Message is server-supplied
// and human readable.
type ProtocolError struct {
	Op      string
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server reported failure (code %d)", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Message, e.Code)
}
