package gcio

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by IOError. Callers can classify failures with
// errors.Is without parsing messages.
var (
	// ErrClosed indicates an operation on a stream that was closed by request.
	ErrClosed = errors.New("file stream is closed")

	// ErrMoved indicates an operation on a stream whose handle ownership was
	// transferred away with Move. Using a vacated stream is a usage-contract
	// violation; it is reported distinctly from ErrClosed.
	ErrMoved = errors.New("file stream was moved from")

	// ErrNotReadable indicates a read against a stream opened write-only.
	ErrNotReadable = errors.New("stream not open for reading")

	// ErrNotWritable indicates a write against a stream opened read-only.
	ErrNotWritable = errors.New("stream not open for writing")
)

// IOError is the single error kind reported by this package. It carries the
// failing operation and, where one applies, the path involved, so the message
// is actionable on its own.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("gcio: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gcio: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
