package gcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcio "github.com/GC-1-1/GCio"
)

func newTestConsole(input string) (*gcio.Console, *strings.Builder) {
	var out strings.Builder
	c := gcio.NewConsole(gcio.WithInput(strings.NewReader(input)), gcio.WithOutput(&out))
	return c, &out
}

func TestConsolePrint(t *testing.T) {
	c, out := newTestConsole("")

	require.NoError(t, c.Print("%s is %d", "answer", 42))
	assert.Equal(t, "answer is 42", out.String())

	require.NoError(t, c.Println(" and %v more", true))
	assert.Equal(t, "answer is 42 and true more\n", out.String())
}

func TestConsoleReadLine(t *testing.T) {
	c, _ := newTestConsole("first\nsecond")

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	// A final line without a terminator still counts.
	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = c.ReadLine()
	require.Error(t, err, "exhausted input is a hard failure on the console")

	var ioErr *gcio.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "console read", ioErr.Op)
}

func TestConsoleScan(t *testing.T) {
	t.Run("parses one token", func(t *testing.T) {
		c, _ := newTestConsole("42\n")
		v, err := gcio.Scan[int](c)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("discards the rest of the line", func(t *testing.T) {
		c, _ := newTestConsole("7 leftover junk\nnext line\n")

		v, err := gcio.Scan[int](c)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		line, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "next line", line, "leftover input must not corrupt the following read")
	})

	t.Run("parse failure is a hard failure", func(t *testing.T) {
		c, _ := newTestConsole("notanumber\n")
		_, err := gcio.Scan[int](c)
		require.Error(t, err)

		var ioErr *gcio.IOError
		require.ErrorAs(t, err, &ioErr)
	})

	t.Run("exhausted input is a hard failure", func(t *testing.T) {
		c, _ := newTestConsole("")
		_, err := gcio.Scan[string](c)
		require.Error(t, err)
	})
}

func TestConsolePrompt(t *testing.T) {
	c, out := newTestConsole("3.25\n")

	v, err := gcio.Prompt[float64](c, "ratio: ")
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)
	assert.Equal(t, "ratio: ", out.String(), "prompt message gets no added terminator")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestConsoleWriteFailure(t *testing.T) {
	c := gcio.NewConsole(gcio.WithInput(strings.NewReader("")), gcio.WithOutput(failingWriter{}))

	err := c.Print("boom")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	var ioErr *gcio.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "console write", ioErr.Op)
}
