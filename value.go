package gcio

import "fmt"

// Writable constrains the types the typed write operations accept to those
// with a canonical textual rendering.
type Writable interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Readable constrains the types the typed read operations accept to those
// parseable from a single whitespace-delimited token.
type Readable interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ReadValue parses the next whitespace-delimited token of the stream into T.
// The second result is false when no value could be read: the stream is not
// open for reading, is exhausted, or the token does not parse as a T. Those
// outcomes are deliberately unified; callers treat false as "could not read
// a T right now". Go methods cannot carry type parameters, so the typed
// operations are package functions over the stream.
func ReadValue[T Readable](s *FileStream) (T, bool) {
	var v T
	if s.state != stateOpen || !s.mode.readable() {
		return v, false
	}
	if _, err := fmt.Fscan(s.file, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// WriteValue renders v canonically and writes it at the current position.
// It fails with an IOError if the stream is not open for writing.
func WriteValue[T Writable](s *FileStream, v T) error {
	_, err := fmt.Fprint(s, v)
	return err
}

// WriteLineValue is WriteValue plus a trailing line terminator.
func WriteLineValue[T Writable](s *FileStream, v T) error {
	if err := WriteValue(s, v); err != nil {
		return err
	}
	return s.WriteString("\n")
}
