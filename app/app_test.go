package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
	handicapdb "github.com/MasterObie1/golf-sub003/app/modules/handicap/infrastructure/repositories"
	scheduledomain "github.com/MasterObie1/golf-sub003/app/modules/schedule/domain"
	scheduledb "github.com/MasterObie1/golf-sub003/app/modules/schedule/infrastructure/repositories"
	handicapmetrics "github.com/MasterObie1/golf-sub003/app/shared/observability/metrics/handicap"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
	"github.com/MasterObie1/golf-sub003/config"
)

type stubHandicapRepo struct{}

func (stubHandicapRepo) GetLeagueSettings(context.Context, sharedtypes.LeagueID) (handicapdb.LeagueSettingsRecord, error) {
	return handicapdb.LeagueSettingsRecord{Preset: handicapdomain.PresetSimple}, nil
}

func (stubHandicapRepo) GetScores(context.Context, sharedtypes.LeagueID, sharedtypes.TeamID) ([]sharedtypes.Score, error) {
	return []sharedtypes.Score{45}, nil
}

func (stubHandicapRepo) SaveHandicap(context.Context, handicapdb.HandicapRecord) error {
	return nil
}

type stubScheduleRepo struct{}

func (stubScheduleRepo) GetSeasonConfig(context.Context, sharedtypes.LeagueID) (scheduledb.SeasonConfig, error) {
	return scheduledb.SeasonConfig{TotalWeeks: 10, StartWeek: 1}, nil
}

func (stubScheduleRepo) GetApprovedTeamIDs(context.Context, sharedtypes.LeagueID) ([]sharedtypes.TeamID, error) {
	return []sharedtypes.TeamID{1, 2, 3, 4}, nil
}

func (stubScheduleRepo) SaveRounds(context.Context, sharedtypes.LeagueID, []scheduledomain.Round) error {
	return nil
}

func (stubScheduleRepo) GetRounds(context.Context, sharedtypes.LeagueID) ([]scheduledomain.Round, error) {
	return nil, nil
}

func TestNewAppDefaults(t *testing.T) {
	a := NewApp(&config.Config{}, Options{
		HandicapRepo: stubHandicapRepo{},
		ScheduleRepo: stubScheduleRepo{},
	})

	require.NotNil(t, a.Logger)
	require.NotNil(t, a.HandicapService)
	require.NotNil(t, a.ScheduleService)
	// Without a registerer the metrics are no-ops.
	require.IsType(t, handicapmetrics.NoOpMetrics{}, a.HandicapMetrics)
}

func TestNewAppServicesWork(t *testing.T) {
	a := NewApp(&config.Config{}, Options{
		HandicapRepo: stubHandicapRepo{},
		ScheduleRepo: stubScheduleRepo{},
		Logger:       slog.New(slog.DiscardHandler),
	})

	leagueID := sharedtypes.LeagueID(uuid.New())

	recalc, err := a.HandicapService.RecalculateForTeam(context.Background(), leagueID, 1, 1)
	require.NoError(t, err)
	require.True(t, recalc.IsSuccess())

	season, err := a.ScheduleService.GenerateSeason(context.Background(), leagueID)
	require.NoError(t, err)
	require.True(t, season.IsSuccess())
}

func TestNewAppPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	a := NewApp(&config.Config{}, Options{
		HandicapRepo: stubHandicapRepo{},
		ScheduleRepo: stubScheduleRepo{},
		Logger:       slog.New(slog.DiscardHandler),
		Registerer:   registry,
	})

	// Drive both services so the counters move, then confirm the registry
	// actually gathers the collectors.
	leagueID := sharedtypes.LeagueID(uuid.New())
	_, err := a.HandicapService.RecalculateForTeam(context.Background(), leagueID, 1, 1)
	require.NoError(t, err)
	_, err = a.ScheduleService.GenerateSeason(context.Background(), leagueID)
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["golf_league_handicap_operation_attempts_total"], "missing handicap counter, have %v", names)
	require.True(t, names["golf_league_schedule_operation_attempts_total"], "missing schedule counter, have %v", names)
}
