// Package streamtest provides a conformance test suite for validating that
// the gcio stream layer holds its contracts over a filesystem backend.
//
// The suite exercises backend-visible behavior only: content round-trips,
// append concatenation, line splitting, truncation, open-mode semantics,
// cursor positioning and handle ownership. Backend packages import it and
// run it against a fresh filesystem:
//
//	func TestMemory(t *testing.T) {
//	    streamtest.TestSuite(t, func() billy.Filesystem {
//	        return memfs.New()
//	    })
//	}
package streamtest

import (
	"errors"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"

	gcio "github.com/GC-1-1/GCio"
)

// TestSuite runs every conformance test against the backend. The newFS
// function must return a fresh, empty filesystem for each test; tests create
// and modify files, so each invocation should start clean.
func TestSuite(t *testing.T, newFS func() billy.Filesystem) {
	t.Run("RoundTrip", func(t *testing.T) {
		TestRoundTrip(t, newFS())
	})
	t.Run("Append", func(t *testing.T) {
		TestAppend(t, newFS())
	})
	t.Run("Lines", func(t *testing.T) {
		TestLines(t, newFS())
	})
	t.Run("Truncate", func(t *testing.T) {
		TestTruncate(t, newFS())
	})
	t.Run("OpenModes", func(t *testing.T) {
		TestOpenModes(t, newFS())
	})
	t.Run("SeekTell", func(t *testing.T) {
		TestSeekTell(t, newFS())
	})
	t.Run("Ownership", func(t *testing.T) {
		TestOwnership(t, newFS())
	})
}

// TestRoundTrip verifies WriteFile/ReadFile fidelity for arbitrary byte
// sequences, including empty content, embedded terminators and null bytes.
func TestRoundTrip(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	contents := []string{
		"",
		"hello",
		"line one\nline two\n",
		"bin\x00ary\x00\xff",
		"no trailing newline",
	}
	for _, content := range contents {
		if err := gcio.WriteFile("round.bin", content, opt); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", content, err)
		}
		got, err := gcio.ReadFile("round.bin", opt)
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if got != content {
			t.Errorf("ReadFile() = %q, want %q", got, content)
		}
	}
}

// TestAppend verifies that consecutive appends concatenate with no implicit
// separator and that appending creates a missing file.
func TestAppend(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	if err := gcio.AppendFile("app.txt", "first", opt); err != nil {
		t.Fatalf("AppendFile(missing file): got error %v, want nil", err)
	}
	if err := gcio.AppendFile("app.txt", "\x00second", opt); err != nil {
		t.Fatalf("AppendFile(): got error %v, want nil", err)
	}
	got, err := gcio.ReadFile("app.txt", opt)
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if want := "first\x00second"; got != want {
		t.Errorf("ReadFile() = %q, want %q", got, want)
	}

	// Append-mode writes land at end-of-file even after an explicit rewind.
	s, err := gcio.Open("app.txt", gcio.ModeAppend, opt)
	if err != nil {
		t.Fatalf("Open(ModeAppend): got error %v, want nil", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0): got error %v, want nil", err)
	}
	if err := s.WriteString("!tail"); err != nil {
		t.Fatalf("WriteString(): got error %v, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
	got, err = gcio.ReadFile("app.txt", opt)
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if want := "first\x00second!tail"; got != want {
		t.Errorf("ReadFile() after rewound append = %q, want %q", got, want)
	}
}

// TestLines verifies line splitting for empty files and for files with and
// without a trailing terminator.
func TestLines(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	cases := []struct {
		content string
		want    []string
	}{
		{"", nil},
		{"x\ny\n", []string{"x", "y"}},
		{"x\ny", []string{"x", "y"}},
		{"\n\n", []string{"", ""}},
	}
	for _, tc := range cases {
		if err := gcio.WriteFile("lines.txt", tc.content, opt); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", tc.content, err)
		}
		got, err := gcio.ReadLines("lines.txt", opt)
		if err != nil {
			t.Fatalf("ReadLines(%q): got error %v, want nil", tc.content, err)
		}
		if len(got) != len(tc.want) {
			t.Errorf("ReadLines(%q) = %q, want %q", tc.content, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ReadLines(%q)[%d] = %q, want %q", tc.content, i, got[i], tc.want[i])
			}
		}
	}
}

// TestTruncate verifies that ModeWrite truncates pre-existing longer content.
func TestTruncate(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	if err := gcio.WriteFile("trunc.txt", "abcdef", opt); err != nil {
		t.Fatalf("WriteFile(): got error %v, want nil", err)
	}
	if err := gcio.WriteFile("trunc.txt", "ab", opt); err != nil {
		t.Fatalf("WriteFile(): got error %v, want nil", err)
	}
	got, err := gcio.ReadFile("trunc.txt", opt)
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if got != "ab" {
		t.Errorf("ReadFile() = %q, want %q", got, "ab")
	}
}

// TestOpenModes verifies the per-mode open semantics: existing-file
// requirements, creation, and direction gating.
func TestOpenModes(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	if _, err := gcio.Open("missing.txt", gcio.ModeRead, opt); err == nil {
		t.Errorf("Open(missing, ModeRead): got nil error, want IOError")
	} else {
		var ioErr *gcio.IOError
		if !errors.As(err, &ioErr) {
			t.Errorf("Open(missing, ModeRead): error type %T, want *gcio.IOError", err)
		}
	}
	if _, err := gcio.Open("missing.txt", gcio.ModeReadWrite, opt); err == nil {
		t.Errorf("Open(missing, ModeReadWrite): got nil error, want IOError")
	}

	s, err := gcio.Open("created.txt", gcio.ModeWrite, opt)
	if err != nil {
		t.Fatalf("Open(missing, ModeWrite): got error %v, want nil", err)
	}
	if !s.IsOpen() {
		t.Errorf("IsOpen() = false after successful Open")
	}
	if _, err := s.ReadAll(); !errors.Is(err, gcio.ErrNotReadable) {
		t.Errorf("ReadAll() on write-only stream: got %v, want ErrNotReadable", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}

	// ModeReadWrite overwrites in place without truncating.
	if err := gcio.WriteFile("rw.txt", "abcdef", opt); err != nil {
		t.Fatalf("WriteFile(): got error %v, want nil", err)
	}
	rw, err := gcio.Open("rw.txt", gcio.ModeReadWrite, opt)
	if err != nil {
		t.Fatalf("Open(ModeReadWrite): got error %v, want nil", err)
	}
	if err := rw.WriteString("xy"); err != nil {
		t.Fatalf("WriteString(): got error %v, want nil", err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
	got, err := gcio.ReadFile("rw.txt", opt)
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if want := "xycdef"; got != want {
		t.Errorf("ReadFile() after ReadWrite overwrite = %q, want %q", got, want)
	}

	ro, err := gcio.Open("rw.txt", gcio.ModeRead, opt)
	if err != nil {
		t.Fatalf("Open(ModeRead): got error %v, want nil", err)
	}
	defer ro.Close()
	if err := ro.WriteString("nope"); !errors.Is(err, gcio.ErrNotWritable) {
		t.Errorf("WriteString() on read-only stream: got %v, want ErrNotWritable", err)
	}
}

// TestSeekTell verifies absolute repositioning and cursor reporting, within
// and beyond the current content length.
func TestSeekTell(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	if err := gcio.WriteFile("seek.txt", "abcdef", opt); err != nil {
		t.Fatalf("WriteFile(): got error %v, want nil", err)
	}
	s, err := gcio.Open("seek.txt", gcio.ModeReadWrite, opt)
	if err != nil {
		t.Fatalf("Open(): got error %v, want nil", err)
	}
	defer s.Close()

	for _, n := range []int64{0, 3, 6, 100} {
		if _, err := s.Seek(n, io.SeekStart); err != nil {
			t.Fatalf("Seek(%d): got error %v, want nil", n, err)
		}
		pos, err := s.Tell()
		if err != nil {
			t.Fatalf("Tell(): got error %v, want nil", err)
		}
		if pos != n {
			t.Errorf("Tell() after Seek(%d) = %d, want %d", n, pos, n)
		}
	}

	// ReadAll leaves the cursor at end of content.
	if _, err := s.ReadAll(); err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	pos, err := s.Tell()
	if err != nil {
		t.Fatalf("Tell(): got error %v, want nil", err)
	}
	if pos != 6 {
		t.Errorf("Tell() after ReadAll = %d, want 6", pos)
	}
}

// TestOwnership verifies move-only handle ownership and close idempotency.
func TestOwnership(t *testing.T, fsys billy.Filesystem) {
	opt := gcio.WithFilesystem(fsys)

	src, err := gcio.Open("owned.txt", gcio.ModeWrite, opt)
	if err != nil {
		t.Fatalf("Open(): got error %v, want nil", err)
	}
	dst := src.Move()
	defer dst.Close()

	if src.IsOpen() {
		t.Errorf("IsOpen() on moved-from stream = true, want false")
	}
	if !dst.IsOpen() {
		t.Errorf("IsOpen() on moved-to stream = false, want true")
	}
	if err := src.WriteString("x"); !errors.Is(err, gcio.ErrMoved) {
		t.Errorf("WriteString() on moved-from stream: got %v, want ErrMoved", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() on moved-from stream: got error %v, want nil", err)
	}
	if err := dst.WriteString("kept"); err != nil {
		t.Fatalf("WriteString() on moved-to stream: got error %v, want nil", err)
	}
	if err := dst.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
	if err := dst.Close(); err != nil {
		t.Errorf("second Close(): got error %v, want nil", err)
	}
	if err := dst.WriteString("x"); !errors.Is(err, gcio.ErrClosed) {
		t.Errorf("WriteString() on closed stream: got %v, want ErrClosed", err)
	}

	got, err := gcio.ReadFile("owned.txt", opt)
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if got != "kept" {
		t.Errorf("ReadFile() = %q, want %q", got, "kept")
	}
}
