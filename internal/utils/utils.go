// Package utils holds small helpers with no better home.
package utils

import (
	"context"
	"time"
)

// sleep is swappable so tests can skip real waits.
var sleep = time.Sleep

// WaitFor pauses for the given duration unless the context ends first, in
// which case the context's error is returned. Non-positive durations return
// immediately.
func WaitFor(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(delay)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
