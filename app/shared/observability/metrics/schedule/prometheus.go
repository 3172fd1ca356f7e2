package schedulemetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements ScheduleMetrics on a Prometheus registerer.
type PrometheusMetrics struct {
	attempts         *prometheus.CounterVec
	successes        *prometheus.CounterVec
	failures         *prometheus.CounterVec
	durations        *prometheus.HistogramVec
	seasonsGenerated prometheus.Counter
	roundsGenerated  prometheus.Counter
	teamsScheduled   prometheus.Counter
	validationErrors prometheus.Counter
}

// NewPrometheusMetrics registers the schedule metric family on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "operation_attempts_total",
			Help:      "Schedule service operations attempted.",
		}, []string{"operation"}),
		successes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "operation_successes_total",
			Help:      "Schedule service operations that succeeded.",
		}, []string{"operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "operation_failures_total",
			Help:      "Schedule service operations that failed.",
		}, []string{"operation"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "operation_duration_seconds",
			Help:      "Schedule service operation durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		seasonsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "seasons_generated_total",
			Help:      "Season schedules generated.",
		}),
		roundsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "rounds_generated_total",
			Help:      "Rounds generated across all seasons.",
		}),
		teamsScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "teams_scheduled_total",
			Help:      "Teams placed into generated seasons.",
		}),
		validationErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "golf_league",
			Subsystem: "schedule",
			Name:      "validation_errors_total",
			Help:      "Integrity errors reported by schedule validation.",
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

func (m *PrometheusMetrics) RecordSeasonGenerated(_ context.Context, teams, rounds int) {
	m.seasonsGenerated.Inc()
	m.roundsGenerated.Add(float64(rounds))
	m.teamsScheduled.Add(float64(teams))
}

func (m *PrometheusMetrics) RecordValidationErrors(_ context.Context, count int) {
	m.validationErrors.Add(float64(count))
}
