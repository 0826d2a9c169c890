package roster

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Stage and pipeline names.
const (
	PipelineName  Name = "roster"
	ValidateName  Name = "validate"
	ClassifyName  Name = "classify"
	SummarizeName Name = "summarize"
	CountName     Name = "count"
)

// Pipeline metrics.
const (
	RosterBatchesTotal  = metricz.Key("roster.batches.total")
	RosterRejectedTotal = metricz.Key("roster.rejected.total")
	RosterUsersTotal    = metricz.Key("roster.users.total")
	RosterAdultsTotal   = metricz.Key("roster.adults.total")
)

// Batch is the envelope that flows through the pipeline stages.
//
// Each stage consumes its input field and clears it before handing the
// batch on, so every collection belongs to exactly one stage at a time.
type Batch struct {
	ID         string
	Records    []RawRecord
	Users      []User
	Classified []ClassifiedUser
	Summary    Summary
}

// NewBatch wraps records in a batch with a fresh random ID.
func NewBatch(records []RawRecord) Batch {
	return Batch{ID: uuid.NewString(), Records: records}
}

// Pipeline validates, classifies and summarizes batches of raw records.
// A Pipeline holds no per-run state and may be shared between goroutines.
type Pipeline struct {
	seq     *Sequence[Batch]
	metrics *metricz.Registry
}

// NewPipeline builds the validate → classify → summarize sequence.
func NewPipeline() *Pipeline {
	metrics := metricz.New()
	metrics.Counter(RosterBatchesTotal)
	metrics.Counter(RosterRejectedTotal)
	metrics.Counter(RosterUsersTotal)
	metrics.Counter(RosterAdultsTotal)

	p := &Pipeline{metrics: metrics}
	p.seq = NewSequence[Batch](PipelineName,
		Apply(ValidateName, validateStage),
		Transform(ClassifyName, classifyStage),
		Apply(SummarizeName, summarizeStage),
		Effect(CountName, p.count),
	)
	return p
}

func validateStage(_ context.Context, b Batch) (Batch, error) {
	users, err := Validate(b.Records)
	if err != nil {
		return b, err
	}
	b.Records = nil
	b.Users = users
	return b, nil
}

func classifyStage(_ context.Context, b Batch) Batch {
	b.Classified = Classify(b.Users)
	b.Users = nil
	return b
}

func summarizeStage(_ context.Context, b Batch) (Batch, error) {
	summary, err := Summarize(b.Classified)
	if err != nil {
		return b, err
	}
	summary.BatchID = b.ID
	b.Classified = nil
	b.Summary = summary
	return b, nil
}

func (p *Pipeline) count(_ context.Context, b Batch) error {
	users := p.metrics.Counter(RosterUsersTotal)
	for range b.Summary.Count {
		users.Inc()
	}
	adults := p.metrics.Counter(RosterAdultsTotal)
	for range b.Summary.Adults {
		adults.Inc()
	}
	return nil
}

// Run processes one batch of records and returns its summary.
//
// The first failing stage short-circuits the run. Domain failures are
// returned as *ValidationError whichever stage produced them; a canceled
// or expired context is returned as the *Error[Batch] from the sequence.
func (p *Pipeline) Run(ctx context.Context, records []RawRecord) (Summary, error) {
	p.metrics.Counter(RosterBatchesTotal).Inc()

	out, err := p.seq.Process(ctx, NewBatch(records))
	if err != nil {
		p.metrics.Counter(RosterRejectedTotal).Inc()
		var verr *ValidationError
		if errors.As(err, &verr) {
			return Summary{}, verr
		}
		return Summary{}, err
	}
	return out.Summary, nil
}

// Process runs the pipeline and renders the summary report.
func (p *Pipeline) Process(ctx context.Context, records []RawRecord) (string, error) {
	summary, err := p.Run(ctx, records)
	if err != nil {
		return "", err
	}
	return summary.String(), nil
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []Name {
	return p.seq.Names()
}

// WithClock sets the clock used for stage durations.
func (p *Pipeline) WithClock(clock clockz.Clock) *Pipeline {
	p.seq.WithClock(clock)
	return p
}

// Metrics returns the pipeline-level metrics registry.
func (p *Pipeline) Metrics() *metricz.Registry {
	return p.metrics
}

// SequenceMetrics returns the metrics of the underlying sequence.
func (p *Pipeline) SequenceMetrics() *metricz.Registry {
	return p.seq.Metrics()
}

// Tracer returns the tracer of the underlying sequence.
func (p *Pipeline) Tracer() *tracez.Tracer {
	return p.seq.Tracer()
}

// OnStageComplete registers a handler for every finished stage.
func (p *Pipeline) OnStageComplete(handler func(context.Context, SequenceEvent) error) error {
	return p.seq.OnStageComplete(handler)
}

// OnAllComplete registers a handler for every successful run.
func (p *Pipeline) OnAllComplete(handler func(context.Context, SequenceEvent) error) error {
	return p.seq.OnAllComplete(handler)
}

// Close releases the tracer and hook dispatcher.
func (p *Pipeline) Close() error {
	return p.seq.Close()
}
