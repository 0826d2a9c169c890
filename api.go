// Package roster validates, classifies and summarizes small batches of user
// records.
//
// # Overview
//
// A batch of raw records travels through three named stages:
//
//	raw records → validate → classify → summarize → report
//
// Each stage is a Chainable[Batch] and the stages are composed with a
// Sequence, so execution is fail-fast: the first invalid record aborts the
// whole batch and no later stage runs.
//
// # Quick Start
//
//	pipeline := roster.NewPipeline()
//	defer pipeline.Close()
//
//	report, err := pipeline.Process(ctx, []roster.RawRecord{
//	    roster.Raw(1, "Alice", 25),
//	    roster.Raw(2, "Bob", 30),
//	    roster.Raw(3, "Charlie", 35),
//	})
//	// report:
//	// Average age is 30.0
//	// Oldest user: Charlie (id 3, age 35)
//	// Adult count: 3
//
// # Errors
//
// Domain failures are always *ValidationError. Pipeline.Run extracts it from
// the stage error so callers have a single type to handle:
//
//	_, err := pipeline.Run(ctx, records)
//	var verr *roster.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("rejected: %s", verr.Detail)
//	}
//
// Processors used on their own return *Error[T], which records the path of
// processor names that led to the failure along with the input, the
// duration and whether the context expired.
//
// # Building Blocks
//
// The stage runtime is usable with any type:
//
//	double := roster.Transform("double", func(_ context.Context, n int) int {
//	    return n * 2
//	})
//	positive := roster.Effect("positive", func(_ context.Context, n int) error {
//	    if n <= 0 {
//	        return errors.New("must be positive")
//	    }
//	    return nil
//	})
//	seq := roster.NewSequence("numbers", positive, double)
package roster

import "context"

// Chainable defines the interface for any component that can process
// values of type T. Processors and sequences both implement it, which is
// what lets a Sequence hold either.
//
// Key design principles:
//   - Context support for timeout and cancellation
//   - Type safety through generics
//   - Error propagation for fail-fast behavior
//   - Named components for debugging and monitoring
type Chainable[T any] interface {
	Process(context.Context, T) (T, error)
	Name() Name
}

// Name is a type alias for processor and connector names.
// Store names as constants rather than inline strings:
//
//	const (
//	    ValidateName Name = "validate"
//	    ClassifyName Name = "classify"
//	)
type Name = string

// Processor is a named processing stage for values of type T.
//
// Processors are created by the adapter functions Apply, Transform and
// Effect. The name appears in Error[T].Path so a failure can be traced back
// to the exact stage that produced it.
type Processor[T any] struct {
	fn   func(context.Context, T) (T, error)
	name Name
}

// Process implements the Chainable interface.
func (p Processor[T]) Process(ctx context.Context, data T) (T, error) {
	return p.fn(ctx, data)
}

// Name returns the name of the processor for debugging and error reporting.
func (p Processor[T]) Name() Name {
	return p.name
}
