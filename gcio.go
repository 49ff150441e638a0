// Package gcio is a small convenience layer over console and file I/O.
//
// It offers two surfaces. Console wraps the process's standard streams with
// formatted printing and typed, prompt-driven reads. FileStream wraps a
// single open file handle with scoped, type-checked reading and writing:
// open/close discipline, exclusive transferable ownership, position tracking
// and uniform failure classification through IOError.
//
// File access is routed through a go-billy filesystem. The default backend
// behaves like the native filesystem; WithFilesystem substitutes any other
// backend, such as memfs.New() for hermetic tests or osfs.New(dir) for a
// directory-confined view.
//
// The free functions ReadFile, WriteFile, AppendFile and ReadLines compose
// the stream layer for one-shot operations, acquiring and releasing the
// handle within the call.
package gcio

import (
	"os"
)

// ReadFile opens path for reading, returns its whole content and closes the
// handle before returning.
func ReadFile(path string, opts ...Option) (string, error) {
	s, err := Open(path, ModeRead, opts...)
	if err != nil {
		return "", err
	}
	defer s.Close()
	return s.ReadAll()
}

// WriteFile writes content to path, truncating any previous content and
// creating the file if needed.
func WriteFile(path, content string, opts ...Option) error {
	s, err := Open(path, ModeWrite, opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.WriteString(content); err != nil {
		return err
	}
	return s.Close()
}

// AppendFile appends content to path, creating the file if needed. No
// separator is inserted between existing and new content.
func AppendFile(path, content string, opts ...Option) error {
	s, err := Open(path, ModeAppend, opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.WriteString(content); err != nil {
		return err
	}
	return s.Close()
}

// ReadLines reads every line of path in file order into a fully materialized
// slice. A missing trailing terminator does not change the result; an empty
// file yields no lines.
func ReadLines(path string, opts ...Option) ([]string, error) {
	s, err := Open(path, ModeRead, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	var lines []string
	for {
		line, ok := s.ReadLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Exists reports whether path exists. A missing path is false with a nil
// error; any other stat failure is an IOError.
func Exists(path string, opts ...Option) (bool, error) {
	o := newOptions(opts)
	_, err := o.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}
}
