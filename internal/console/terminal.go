package console

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is a line-oriented console over a reader and writer, typically
// the process's stdin and stdout.
type Terminal struct {
	lines *lineFeed
	out   io.Writer
	tty   bool
}

// NewTerminal wraps in and out. Screen clearing is only emitted when out is
// an interactive terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	reader := bufio.NewReader(in)
	return &Terminal{
		lines: newLineFeed(func() (string, error) {
			line, err := reader.ReadString('\n')
			return strings.TrimRight(line, "\r\n"), err
		}),
		out: out,
		tty: isTerminal(out),
	}
}

// Stdio returns a console bound to os.Stdin and os.Stdout.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Write writes p to the output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadLine returns the next line without its terminator. The last line of
// input is returned together with io.EOF when it lacks a newline. It returns
// ctx.Err() as soon as ctx is done, even while the read is still pending.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	return t.lines.next(ctx)
}

// Pause waits for Enter.
func (t *Terminal) Pause(ctx context.Context) error {
	return pause(ctx, t.out, t.ReadLine)
}

// Clear wipes the screen when attached to a terminal.
func (t *Terminal) Clear() error {
	if !t.tty {
		return nil
	}
	return clearScreen(t.out)
}
