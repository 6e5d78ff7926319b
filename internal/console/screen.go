package console

import (
	"context"
	"io"
)

const (
	clearSequence = "\x1b[H\x1b[2J"
	pausePrompt   = "\nPress Enter to continue...\n"
)

func clearScreen(out io.Writer) error {
	_, err := io.WriteString(out, clearSequence)
	return err
}

// pause writes the acknowledgment prompt and consumes one line. A final
// line without a terminator still counts as an acknowledgment.
func pause(ctx context.Context, out io.Writer, readLine func(context.Context) (string, error)) error {
	if _, err := io.WriteString(out, pausePrompt); err != nil {
		return err
	}
	line, err := readLine(ctx)
	if err == io.EOF && line != "" {
		return nil
	}
	return err
}
