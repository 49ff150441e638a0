package gcio

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// nativeOS is a billy filesystem that acts like the native filesystem:
// paths are handed to the OS exactly as given, with no chroot applied.
type nativeOS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (nativeOS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (nativeOS) Root() string {
	return "/"
}

// options holds the configurable collaborators of Open and the free-function
// helpers. The zero configuration targets the native filesystem and logs
// nothing.
type options struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// Option configures Open and the free-function helpers.
type Option func(*options)

// WithFilesystem routes all file access through the given billy filesystem
// instead of the native one. An in-memory filesystem (memfs.New) makes the
// whole layer testable without touching the disk; a chrooted filesystem
// (osfs.New(dir)) confines it to a directory. A nil value is ignored.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithLogger enables structured debug logging of open and close events.
// The default is no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{fs: &nativeOS{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
