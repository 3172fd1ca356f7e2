// Package app is the composition root: it assembles the handicap and schedule
// services from the collaborators a host application supplies. There is no
// server or run loop here; the engine is embedded in-process by whatever
// surrounds it.
package app

import (
	"log/slog"

	handicapservice "github.com/MasterObie1/golf-sub003/app/modules/handicap/application"
	handicapdb "github.com/MasterObie1/golf-sub003/app/modules/handicap/infrastructure/repositories"
	scheduleservice "github.com/MasterObie1/golf-sub003/app/modules/schedule/application"
	scheduledb "github.com/MasterObie1/golf-sub003/app/modules/schedule/infrastructure/repositories"
	handicapmetrics "github.com/MasterObie1/golf-sub003/app/shared/observability/metrics/handicap"
	schedulemetrics "github.com/MasterObie1/golf-sub003/app/shared/observability/metrics/schedule"
	"github.com/MasterObie1/golf-sub003/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// App holds the assembled services.
type App struct {
	Cfg             *config.Config
	Logger          *slog.Logger
	HandicapService handicapservice.Service
	ScheduleService scheduleservice.Service
	HandicapMetrics handicapmetrics.HandicapMetrics
	ScheduleMetrics schedulemetrics.ScheduleMetrics
}

// Options are the collaborators the host must (or may) provide. Repositories
// are required; nil observability collaborators fall back to no-ops.
type Options struct {
	HandicapRepo handicapdb.Repository
	ScheduleRepo scheduledb.Repository
	Logger       *slog.Logger
	Registerer   prometheus.Registerer
	Tracer       trace.Tracer
}

// NewApp initializes the engine services with the given configuration and
// collaborators.
func NewApp(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("golf-league-engine")
	}

	var hm handicapmetrics.HandicapMetrics = handicapmetrics.NoOpMetrics{}
	var sm schedulemetrics.ScheduleMetrics = schedulemetrics.NoOpMetrics{}
	if opts.Registerer != nil {
		hm = handicapmetrics.NewPrometheusMetrics(opts.Registerer)
		sm = schedulemetrics.NewPrometheusMetrics(opts.Registerer)
	}

	return &App{
		Cfg:             cfg,
		Logger:          logger,
		HandicapService: handicapservice.NewHandicapService(opts.HandicapRepo, logger, hm, tracer),
		ScheduleService: scheduleservice.NewScheduleService(opts.ScheduleRepo, logger, sm, tracer),
		HandicapMetrics: hm,
		ScheduleMetrics: sm,
	}
}
