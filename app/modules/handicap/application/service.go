// Package handicapservice wires the pure handicap engine to the collaborators
// the surrounding application provides: a repository for settings and score
// history, structured logging, metrics, and tracing.
package handicapservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	handicapdb "github.com/MasterObie1/golf-sub003/app/modules/handicap/infrastructure/repositories"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	handicapmetrics "github.com/MasterObie1/golf-sub003/app/shared/observability/metrics/handicap"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HandicapService implements the Service interface.
type HandicapService struct {
	repo    handicapdb.Repository
	logger  *slog.Logger
	metrics handicapmetrics.HandicapMetrics
	tracer  trace.Tracer
}

// NewHandicapService creates a new HandicapService.
func NewHandicapService(
	repo handicapdb.Repository,
	logger *slog.Logger,
	metrics handicapmetrics.HandicapMetrics,
	tracer trace.Tracer,
) *HandicapService {
	return &HandicapService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *HandicapService,
	ctx context.Context,
	operationName string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}
