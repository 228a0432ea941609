package helper

import (
	"fmt"
)

var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry calls fn until it succeeds or maxAttempts calls have failed.
// The last error is wrapped together with ErrMaxAttempts.
func Retry(maxAttempts int, fn func() error) error {
	numAttempts := 0
	for {
		err := fn()
		if err == nil {
			return nil
		}
		numAttempts++
		if numAttempts >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, numAttempts, err)
		}
	}
}
