package scheduleservice

import (
	"context"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Service defines the interface for the ScheduleService.
type Service interface {
	// GenerateSeason builds and persists the season fixture list for a league
	// from its approved teams and season configuration.
	GenerateSeason(ctx context.Context, leagueID sharedtypes.LeagueID) (GenerateSeasonResult, error)

	// ValidateStored checks the league's stored (possibly hand-edited) schedule
	// against its approved teams and reports integrity problems.
	ValidateStored(ctx context.Context, leagueID sharedtypes.LeagueID) (ValidateStoredResult, error)
}
