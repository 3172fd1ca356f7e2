// Package handicapmetrics defines the metrics surface for the handicap service.
// Services depend on the interface; production wiring uses the Prometheus
// implementation and tests use the no-op.
package handicapmetrics

import (
	"context"
	"time"
)

// HandicapMetrics records handicap service activity.
type HandicapMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)

	RecordRecalculation(ctx context.Context, preset string)
	RecordFrozenSkip(ctx context.Context)
	RecordPendingApproval(ctx context.Context)
}

// NoOpMetrics discards everything. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordRecalculation(context.Context, string)                   {}
func (NoOpMetrics) RecordFrozenSkip(context.Context)                              {}
func (NoOpMetrics) RecordPendingApproval(context.Context)                         {}
