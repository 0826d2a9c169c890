package roster

import (
	"context"
	"errors"
	"time"
)

// Effect creates a Processor that performs side effects without modifying
// the data: metrics, audit records, checks that only reject.
//
// The original value always passes through unchanged. A returned error
// stops the pipeline just like Apply.
//
// Example:
//
//	nonEmpty := roster.Effect("non_empty", func(_ context.Context, s string) error {
//	    if s == "" {
//	        return errors.New("empty input")
//	    }
//	    return nil
//	})
func Effect[T any](name Name, fn func(context.Context, T) error) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			start := time.Now()
			if err := fn(ctx, value); err != nil {
				var zero T
				return zero, &Error[T]{
					Path:      []Name{name},
					InputData: value,
					Err:       err,
					Timestamp: time.Now(),
					Duration:  time.Since(start),
					Timeout:   errors.Is(err, context.DeadlineExceeded),
					Canceled:  errors.Is(err, context.Canceled),
				}
			}
			return value, nil
		},
	}
}
