package cmd

import (
	"context"
	"fmt"
	"io"
)

// readInput reads r to EOF, giving up when ctx is cancelled. A reader blocked
// on a terminal or pipe cannot be interrupted, so the read runs in its own
// goroutine and is abandoned on cancellation.
func readInput(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", withCode(exitFailure, fmt.Errorf("reading stdin: %w", res.err))
		}
		return string(res.data), nil
	case <-ctx.Done():
		return "", withCode(exitInterrupted, ctx.Err())
	}
}
