package console

import (
	"context"
	"io"

	"golang.org/x/term"
)

// Remote is a console over a raw byte stream such as an SSH channel with a
// PTY. Echo and line editing are handled by x/term.
type Remote struct {
	term  *term.Terminal
	lines *lineFeed
}

// NewRemote wraps rw.
func NewRemote(rw io.ReadWriter) *Remote {
	t := term.NewTerminal(rw, "")
	return &Remote{term: t, lines: newLineFeed(t.ReadLine)}
}

// SetSize updates the terminal dimensions.
func (r *Remote) SetSize(width, height int) error {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return r.term.SetSize(width, height)
}

// Write writes p, translating newlines for the remote terminal.
func (r *Remote) Write(p []byte) (int, error) {
	return r.term.Write(p)
}

// ReadLine reads one edited line, or returns ctx.Err() once ctx is done.
func (r *Remote) ReadLine(ctx context.Context) (string, error) {
	return r.lines.next(ctx)
}

// Pause waits for Enter.
func (r *Remote) Pause(ctx context.Context) error {
	return pause(ctx, r.term, r.ReadLine)
}

// Clear wipes the remote screen.
func (r *Remote) Clear() error {
	return clearScreen(r.term)
}
