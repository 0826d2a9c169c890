package roster

import (
	"context"
)

// Transform creates a Processor that applies a pure transformation function
// to data. Transform is the infallible stage form: the function cannot
// return an error, so a Transform only fails if it panics.
//
// Example:
//
//	upper := roster.Transform("uppercase", func(_ context.Context, s string) string {
//	    return strings.ToUpper(s)
//	})
func Transform[T any](name Name, fn func(context.Context, T) T) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			return fn(ctx, value), nil
		},
	}
}
