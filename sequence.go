package roster

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Sequence connector.
const (
	// Metrics.
	SequenceProcessedTotal  = metricz.Key("sequence.processed.total")
	SequenceSuccessesTotal  = metricz.Key("sequence.successes.total")
	SequenceFailuresTotal   = metricz.Key("sequence.failures.total")
	SequenceStagesCompleted = metricz.Key("sequence.stages.completed")
	SequenceStagesTotal     = metricz.Key("sequence.stages.total")
	SequenceDurationMs      = metricz.Key("sequence.duration.ms")

	// Spans.
	SequenceProcessSpan = tracez.Key("sequence.process")
	SequenceStageSpan   = tracez.Key("sequence.stage")

	// Tags.
	SequenceTagStageCount    = tracez.Tag("sequence.stage_count")
	SequenceTagStageNumber   = tracez.Tag("sequence.stage_number")
	SequenceTagProcessorName = tracez.Tag("sequence.processor_name")
	SequenceTagSuccess       = tracez.Tag("sequence.success")
	SequenceTagError         = tracez.Tag("sequence.error")

	// Hook event keys.
	SequenceEventStageComplete = hookz.Key("sequence.stage_complete")
	SequenceEventAllComplete   = hookz.Key("sequence.all_complete")
)

// ErrProcessorNotFound is returned by Remove when no processor has the name.
var ErrProcessorNotFound = errors.New("processor not found")

// SequenceEvent represents a sequence processing event.
// It is emitted via hookz when an individual stage completes or when
// all stages have finished.
type SequenceEvent struct {
	Name            Name          // Connector name
	StageName       Name          // Name of the stage processor
	StageNumber     int           // Current stage number (1-based)
	TotalStages     int           // Total number of stages
	Success         bool          // Whether the stage succeeded
	Error           error         // Error if stage failed
	Duration        time.Duration // How long this stage took
	CompletedStages int           // Number of stages completed (for all_complete)
	TotalDuration   time.Duration // Total time for all stages (for all_complete)
	Timestamp       time.Time     // When the event occurred
}

// Sequence runs an ordered list of processors, feeding each the output of
// the previous one. Execution is fail-fast: the first error stops the
// sequence and is returned as an *Error[T] whose Path starts with the
// sequence name.
//
// Sequence is safe for concurrent use. The processor list is copied at the
// start of Process, so registering processors while a run is in flight
// affects only later runs.
//
// # Observability
//
// Metrics:
//   - sequence.processed.total: Counter of sequence operations
//   - sequence.successes.total: Counter of successful completions
//   - sequence.failures.total: Counter of failed sequences
//   - sequence.stages.completed: Gauge of stages completed in the last run
//   - sequence.stages.total: Gauge of total stages
//   - sequence.duration.ms: Gauge of the last run's duration
//
// Traces:
//   - sequence.process: Parent span for the entire sequence
//   - sequence.stage: Child span for each stage
//
// Events (via hooks, delivered asynchronously):
//   - sequence.stage_complete: Fired as each stage completes, success or not
//   - sequence.all_complete: Fired when every stage succeeded
type Sequence[T any] struct {
	name       Name
	processors []Chainable[T]
	mu         sync.RWMutex
	clock      clockz.Clock
	metrics    *metricz.Registry
	tracer     *tracez.Tracer
	hooks      *hookz.Hooks[SequenceEvent]
}

// NewSequence creates a new Sequence with optional initial processors.
//
//	seq := roster.NewSequence[Batch]("roster",
//	    roster.Apply("validate", validate),
//	    roster.Transform("classify", classify),
//	)
func NewSequence[T any](name Name, processors ...Chainable[T]) *Sequence[T] {
	metrics := metricz.New()
	metrics.Counter(SequenceProcessedTotal)
	metrics.Counter(SequenceSuccessesTotal)
	metrics.Counter(SequenceFailuresTotal)
	metrics.Gauge(SequenceStagesCompleted)
	metrics.Gauge(SequenceStagesTotal)
	metrics.Gauge(SequenceDurationMs)

	return &Sequence[T]{
		name:       name,
		processors: slices.Clone(processors),
		metrics:    metrics,
		tracer:     tracez.New(),
		hooks:      hookz.New[SequenceEvent](),
	}
}

// Register appends processors to the sequence. Processors run in the order
// they were registered.
func (c *Sequence[T]) Register(processors ...Chainable[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processors = append(c.processors, processors...)
}

// Process executes all registered processors on the input value.
// The context is checked before each stage; a canceled or expired context
// stops the run with an *Error[T] flagged Timeout or Canceled.
// A panic inside a stage is recovered and returned as an error.
func (c *Sequence[T]) Process(ctx context.Context, value T) (result T, err error) {
	defer recoverFromPanic(&result, &err, c.name, value)

	c.mu.RLock()
	processors := slices.Clone(c.processors)
	c.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	clock := c.getClock()
	c.metrics.Counter(SequenceProcessedTotal).Inc()
	c.metrics.Gauge(SequenceStagesTotal).Set(float64(len(processors)))
	start := clock.Now()

	ctx, span := c.tracer.StartSpan(ctx, SequenceProcessSpan)
	span.SetTag(SequenceTagStageCount, strconv.Itoa(len(processors)))
	defer func() {
		c.metrics.Gauge(SequenceDurationMs).Set(float64(clock.Since(start).Milliseconds()))
		if err == nil {
			span.SetTag(SequenceTagSuccess, "true")
			c.metrics.Counter(SequenceSuccessesTotal).Inc()
		} else {
			span.SetTag(SequenceTagSuccess, "false")
			span.SetTag(SequenceTagError, err.Error())
			c.metrics.Counter(SequenceFailuresTotal).Inc()
		}
		span.Finish()
	}()

	result = value
	stagesCompleted := 0
	c.metrics.Gauge(SequenceStagesCompleted).Set(0)

	for i, proc := range processors {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, &Error[T]{
				Err:       ctxErr,
				InputData: value,
				Path:      []Name{c.name},
				Duration:  clock.Since(start),
				Timeout:   errors.Is(ctxErr, context.DeadlineExceeded),
				Canceled:  errors.Is(ctxErr, context.Canceled),
				Timestamp: clock.Now(),
			}
		}

		stageCtx, stageSpan := c.tracer.StartSpan(ctx, SequenceStageSpan)
		stageSpan.SetTag(SequenceTagStageNumber, strconv.Itoa(i+1))
		stageSpan.SetTag(SequenceTagProcessorName, proc.Name())

		stageStart := clock.Now()
		next, stageErr := proc.Process(stageCtx, result)
		stageDuration := clock.Since(stageStart)
		stageSpan.Finish()

		_ = c.hooks.Emit(ctx, SequenceEventStageComplete, SequenceEvent{ //nolint:errcheck
			Name:        c.name,
			StageName:   proc.Name(),
			StageNumber: i + 1,
			TotalStages: len(processors),
			Success:     stageErr == nil,
			Error:       stageErr,
			Duration:    stageDuration,
			Timestamp:   clock.Now(),
		})

		if stageErr != nil {
			var pipeErr *Error[T]
			if errors.As(stageErr, &pipeErr) {
				pipeErr.Path = append([]Name{c.name}, pipeErr.Path...)
				return result, pipeErr
			}
			return result, &Error[T]{
				Timestamp: clock.Now(),
				InputData: result,
				Err:       stageErr,
				Path:      []Name{c.name, proc.Name()},
				Duration:  stageDuration,
			}
		}

		result = next
		stagesCompleted++
		c.metrics.Gauge(SequenceStagesCompleted).Set(float64(stagesCompleted))
	}

	_ = c.hooks.Emit(ctx, SequenceEventAllComplete, SequenceEvent{ //nolint:errcheck
		Name:            c.name,
		TotalStages:     len(processors),
		CompletedStages: stagesCompleted,
		TotalDuration:   clock.Since(start),
		Success:         true,
		Timestamp:       clock.Now(),
	})

	return result, nil
}

// Len returns the number of processors in the Sequence.
func (c *Sequence[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.processors)
}

// Names returns the names of all processors in order.
func (c *Sequence[T]) Names() []Name {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]Name, len(c.processors))
	for i, proc := range c.processors {
		names[i] = proc.Name()
	}
	return names
}

// Remove removes the first processor with the specified name.
func (c *Sequence[T]) Remove(name Name) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, proc := range c.processors {
		if proc.Name() == name {
			c.processors = slices.Delete(c.processors, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrProcessorNotFound, name)
}

// Name returns the name of this sequence.
func (c *Sequence[T]) Name() Name {
	return c.name
}

// WithClock sets the clock used to measure durations. Intended for tests.
func (c *Sequence[T]) WithClock(clock clockz.Clock) *Sequence[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

func (c *Sequence[T]) getClock() clockz.Clock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// Metrics returns the metrics registry for this connector.
func (c *Sequence[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this connector.
func (c *Sequence[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// Close shuts down the tracer and the hook dispatcher.
func (c *Sequence[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}

// OnStageComplete registers a handler called asynchronously each time a
// stage finishes, whether it succeeds or fails.
func (c *Sequence[T]) OnStageComplete(handler func(context.Context, SequenceEvent) error) error {
	_, err := c.hooks.Hook(SequenceEventStageComplete, handler)
	return err
}

// OnAllComplete registers a handler called asynchronously after every stage
// of a run has succeeded.
func (c *Sequence[T]) OnAllComplete(handler func(context.Context, SequenceEvent) error) error {
	_, err := c.hooks.Hook(SequenceEventAllComplete, handler)
	return err
}
