// Package scheduledb declares the persistence surface the schedule service
// depends on. Storage itself lives outside this repository.
package scheduledb

import (
	"context"

	scheduledomain "github.com/MasterObie1/golf-sub003/app/modules/schedule/domain"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// SeasonConfig is the stored scheduling configuration for one league season.
type SeasonConfig struct {
	LeagueID         sharedtypes.LeagueID
	TotalWeeks       int
	DoubleRoundRobin bool
	StartWeek        sharedtypes.Week
}

// Repository is the schedule service's view of storage.
type Repository interface {
	// GetSeasonConfig returns the league's season scheduling configuration.
	GetSeasonConfig(ctx context.Context, leagueID sharedtypes.LeagueID) (SeasonConfig, error)

	// GetApprovedTeamIDs returns the ids of teams approved for the season.
	GetApprovedTeamIDs(ctx context.Context, leagueID sharedtypes.LeagueID) ([]sharedtypes.TeamID, error)

	// SaveRounds persists a generated season schedule, replacing any existing one.
	SaveRounds(ctx context.Context, leagueID sharedtypes.LeagueID, rounds []scheduledomain.Round) error

	// GetRounds returns the stored (possibly hand-edited) season schedule.
	GetRounds(ctx context.Context, leagueID sharedtypes.LeagueID) ([]scheduledomain.Round, error)
}
