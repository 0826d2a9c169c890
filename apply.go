package roster

import (
	"context"
	"errors"
	"time"
)

// Apply creates a Processor from a function that transforms data and may
// return an error. Use it when a stage can reject its input: parsing,
// validation, anything that enforces a rule.
//
// On error the pipeline stops immediately and the error is wrapped in an
// *Error[T] carrying the processor name, the input and the elapsed time.
//
// Example:
//
//	parseAge := roster.Apply("parse_age", func(_ context.Context, s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
func Apply[T any](name Name, fn func(context.Context, T) (T, error)) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			start := time.Now()
			result, err = fn(ctx, value)
			if err != nil {
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
			return result, nil
		},
	}
}
