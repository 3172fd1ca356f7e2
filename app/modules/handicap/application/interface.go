package handicapservice

import (
	"context"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Service defines the interface for the HandicapService.
type Service interface {
	// RecalculateForTeam recomputes a team's handicap from its stored score
	// history and persists the result, honoring freeze-week and approval rules.
	RecalculateForTeam(ctx context.Context, leagueID sharedtypes.LeagueID, teamID sharedtypes.TeamID, week sharedtypes.Week) (RecalculateResult, error)

	// PreviewMatchup pre-fills a score-entry form: strokes given, net scores,
	// and suggested points for two teams' gross scores. Nothing is persisted.
	PreviewMatchup(ctx context.Context, input MatchupInput) (MatchupResult, error)

	// ExplainHandicap produces the stage-by-stage audit trail for a team's
	// current handicap.
	ExplainHandicap(ctx context.Context, leagueID sharedtypes.LeagueID, teamID sharedtypes.TeamID, week sharedtypes.Week) (ExplainResult, error)
}
