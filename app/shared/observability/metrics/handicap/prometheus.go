package handicapmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements HandicapMetrics on a Prometheus registerer.
type PrometheusMetrics struct {
	attempts        *prometheus.CounterVec
	successes       *prometheus.CounterVec
	failures        *prometheus.CounterVec
	durations       *prometheus.HistogramVec
	recalculations  *prometheus.CounterVec
	frozenSkips     prometheus.Counter
	pendingApproval prometheus.Counter
}

// NewPrometheusMetrics registers the handicap metric family on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "operation_attempts_total",
			Help:      "Handicap service operations attempted.",
		}, []string{"operation"}),
		successes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "operation_successes_total",
			Help:      "Handicap service operations that succeeded.",
		}, []string{"operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "operation_failures_total",
			Help:      "Handicap service operations that failed.",
		}, []string{"operation"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "operation_duration_seconds",
			Help:      "Handicap service operation durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		recalculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "recalculations_total",
			Help:      "Handicaps recalculated, by settings preset.",
		}, []string{"preset"}),
		frozenSkips: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "frozen_skips_total",
			Help:      "Recalculations skipped because the league handicap was frozen.",
		}),
		pendingApproval: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "handicap",
			Name:      "pending_approval_total",
			Help:      "Recalculations held for admin approval.",
		}),
	}
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordRecalculation(_ context.Context, preset string) {
	m.recalculations.WithLabelValues(preset).Inc()
}

func (m *PrometheusMetrics) RecordFrozenSkip(context.Context) {
	m.frozenSkips.Inc()
}

func (m *PrometheusMetrics) RecordPendingApproval(context.Context) {
	m.pendingApproval.Inc()
}
