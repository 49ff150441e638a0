package gcio

import (
	"fmt"
	"os"
)

// FileMode selects the OS-level open flags for a FileStream. It is fixed at
// Open time and immutable for the stream's lifetime.
type FileMode int

const (
	// ModeRead opens an existing file for reading only.
	ModeRead FileMode = iota

	// ModeWrite opens a file for writing only, truncating it if it exists and
	// creating it otherwise.
	ModeWrite

	// ModeAppend opens a file for writing only, creating it if needed. Every
	// write lands at the end of the file regardless of the seek position.
	ModeAppend

	// ModeReadWrite opens an existing file for both reading and writing
	// without truncation.
	ModeReadWrite
)

func (m FileMode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	case ModeReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("FileMode(%d)", int(m))
	}
}

// flag maps the mode onto os.OpenFile flags. Files are always opened in
// binary mode on every platform; no newline translation happens anywhere.
func (m FileMode) flag() (int, error) {
	switch m {
	case ModeRead:
		return os.O_RDONLY, nil
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case ModeAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case ModeReadWrite:
		return os.O_RDWR, nil
	default:
		return 0, fmt.Errorf("unknown file mode %d", int(m))
	}
}

func (m FileMode) readable() bool {
	return m == ModeRead || m == ModeReadWrite
}

func (m FileMode) writable() bool {
	return m == ModeWrite || m == ModeAppend || m == ModeReadWrite
}
