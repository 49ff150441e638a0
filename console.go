package gcio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is a stateless façade over the process's standard input and
// output. It has no lifecycle to manage; the only state it keeps is the
// buffering required to read input line by line. It is intended for
// sequential use from a single goroutine.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithInput reads console input from r instead of os.Stdin.
func WithInput(r io.Reader) ConsoleOption {
	return func(c *Console) {
		c.in = bufio.NewReader(r)
	}
}

// WithOutput writes console output to w instead of os.Stdout.
func WithOutput(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.out = w
	}
}

// NewConsole returns a console over the process's standard streams.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Print renders args into format and writes the result to the output.
func (c *Console) Print(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return &IOError{Op: "console write", Err: err}
	}
	return nil
}

// Println is Print plus a trailing line terminator.
func (c *Console) Println(format string, args ...any) error {
	if err := c.Print(format, args...); err != nil {
		return err
	}
	if _, err := io.WriteString(c.out, "\n"); err != nil {
		return &IOError{Op: "console write", Err: err}
	}
	return nil
}

// ReadLine reads one line from the input with the terminator stripped.
// Unlike FileStream.ReadLine it fails hard with an IOError when the input is
// exhausted or in an error state: an interactive session has no reasonable
// "try again silently" semantics.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a terminator still counts as a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", &IOError{Op: "console read", Err: err}
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// discardLine consumes the remainder of the current input line, terminator
// included, so later line-oriented reads start clean.
func (c *Console) discardLine() {
	_, _ = c.in.ReadString('\n')
}

// Scan parses one whitespace-delimited token from the input as T, then
// discards the remainder of the input line including its terminator so that
// a following ReadLine is not corrupted by leftover input. It fails with an
// IOError if no token is available or the token does not parse as a T.
func Scan[T Readable](c *Console) (T, error) {
	var v T
	if _, err := fmt.Fscan(c.in, &v); err != nil {
		var zero T
		return zero, &IOError{Op: "console scan", Err: err}
	}
	c.discardLine()
	return v, nil
}

// Prompt writes message verbatim (no terminator added) and then reads a T
// the way Scan does.
func Prompt[T Readable](c *Console, message string) (T, error) {
	if err := c.Print("%s", message); err != nil {
		var zero T
		return zero, err
	}
	return Scan[T](c)
}
