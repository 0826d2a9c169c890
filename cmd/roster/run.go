package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zoobzio/roster"
)

// run processes each batch file, or the two sample batches when none is
// given, and prints one result per batch. Pipeline failures are reported on
// out and never returned; only unreadable batch files are errors.
func run(ctx context.Context, out, errOut io.Writer, files []string, verbose bool) error {
	batches, err := collectBatches(files)
	if err != nil {
		return err
	}

	pipeline := roster.NewPipeline()
	defer pipeline.Close()

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
		if err := watchStages(pipeline, logger); err != nil {
			return err
		}
	}

	for _, records := range batches {
		summary, err := pipeline.Run(ctx, records)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			if logger != nil {
				logger.Warn("batch rejected", "records", len(records), "err", err)
			}
			continue
		}
		fmt.Fprintf(out, "Success:\n%s\n", summary)
		if logger != nil {
			logger.Info("batch summarized", "batch", summary.BatchID, "users", summary.Count, "adults", summary.Adults)
		}
	}
	return nil
}

func collectBatches(files []string) ([][]roster.RawRecord, error) {
	if len(files) == 0 {
		return [][]roster.RawRecord{sampleBatch(true), sampleBatch(false)}, nil
	}
	batches := make([][]roster.RawRecord, 0, len(files))
	for _, path := range files {
		records, err := loadBatch(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		batches = append(batches, records)
	}
	return batches, nil
}

// watchStages logs every stage event the pipeline emits.
func watchStages(pipeline *roster.Pipeline, logger *slog.Logger) error {
	if err := pipeline.OnStageComplete(func(_ context.Context, e roster.SequenceEvent) error {
		if e.Success {
			logger.Debug("stage complete", "stage", e.StageName, "number", e.StageNumber, "of", e.TotalStages, "duration", e.Duration)
			return nil
		}
		logger.Info("stage failed", "stage", e.StageName, "number", e.StageNumber, "err", e.Error)
		return nil
	}); err != nil {
		return fmt.Errorf("watch stages: %w", err)
	}
	if err := pipeline.OnAllComplete(func(_ context.Context, e roster.SequenceEvent) error {
		logger.Info("pipeline complete", "stages", e.CompletedStages, "duration", e.TotalDuration)
		return nil
	}); err != nil {
		return fmt.Errorf("watch pipeline: %w", err)
	}
	return nil
}
