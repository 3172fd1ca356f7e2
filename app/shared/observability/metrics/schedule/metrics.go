// Package schedulemetrics defines the metrics surface for the schedule service.
package schedulemetrics

import (
	"context"
	"time"
)

// ScheduleMetrics records schedule service activity.
type ScheduleMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)

	RecordSeasonGenerated(ctx context.Context, teams, rounds int)
	RecordValidationErrors(ctx context.Context, count int)
}

// NoOpMetrics discards everything. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordSeasonGenerated(context.Context, int, int)                {}
func (NoOpMetrics) RecordValidationErrors(context.Context, int)                    {}
