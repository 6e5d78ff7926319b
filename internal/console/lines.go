package console

import (
	"context"
)

type lineResult struct {
	line string
	err  error
}

// lineFeed runs blocking line reads on a goroutine so a waiting caller can
// give up when its context ends. A read abandoned that way stays in flight
// and its line is handed to the next call. Not safe for concurrent use.
type lineFeed struct {
	read    func() (string, error)
	pending chan lineResult
}

func newLineFeed(read func() (string, error)) *lineFeed {
	return &lineFeed{read: read}
}

func (f *lineFeed) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.pending == nil {
		result := make(chan lineResult, 1)
		f.pending = result
		go func() {
			line, err := f.read()
			result <- lineResult{line: line, err: err}
		}()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-f.pending:
		f.pending = nil
		return res.line, res.err
	}
}
