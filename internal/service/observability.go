package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PipelineEvent captures execution telemetry for one run of the submission
// pipeline: aggregation, export and delivery of a single survey.
type PipelineEvent struct {
	Duration    time.Duration
	Success     bool
	Err         error
	Ward        string
	HazardCount int
	RecordCount int
	Warnings    int
	StartedAt   time.Time
}

// PipelineObserver receives submission pipeline events.
type PipelineObserver interface {
	ObserveSubmission(ctx context.Context, event PipelineEvent)
}

// NoopPipelineObserver ignores all events.
type NoopPipelineObserver struct{}

func (NoopPipelineObserver) ObserveSubmission(context.Context, PipelineEvent) {}

type logPipelineObserver struct {
	logger *slog.Logger
}

// NewLogPipelineObserver writes submission events to the provided writer.
func NewLogPipelineObserver(w io.Writer) PipelineObserver {
	if w == nil {
		return NoopPipelineObserver{}
	}
	return &logPipelineObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logPipelineObserver) ObserveSubmission(ctx context.Context, event PipelineEvent) {
	attrs := []any{
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
		"ward", event.Ward,
		"hazards", event.HazardCount,
		"records", event.RecordCount,
		"delivery_warnings", event.Warnings,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "submission", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "submission", attrs...)
}
