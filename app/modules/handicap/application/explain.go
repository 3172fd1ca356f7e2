package handicapservice

import (
	"context"
	"fmt"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// ExplainPayload carries a team's handicap and the audit trail behind it.
type ExplainPayload struct {
	LeagueID sharedtypes.LeagueID
	TeamID   sharedtypes.TeamID
	Handicap sharedtypes.HandicapValue
	Steps    []string
}

// ExplainFailedPayload reports an audit trail that could not be produced.
type ExplainFailedPayload struct {
	LeagueID sharedtypes.LeagueID
	TeamID   sharedtypes.TeamID
	Reason   string
}

// ExplainResult is the envelope for ExplainHandicap.
type ExplainResult = results.OperationResult[ExplainPayload, ExplainFailedPayload]

// ExplainHandicap renders the stage-by-stage audit trail for a team's current
// handicap, for display next to the computed number.
func (s *HandicapService) ExplainHandicap(
	ctx context.Context,
	leagueID sharedtypes.LeagueID,
	teamID sharedtypes.TeamID,
	week sharedtypes.Week,
) (ExplainResult, error) {
	s.logger.InfoContext(ctx, "Explaining team handicap",
		attr.ExtractCorrelationID(ctx),
		attr.String("league_id", leagueID.String()),
		attr.Int64("team_id", int64(teamID)),
	)

	return withTelemetry(s, ctx, "ExplainHandicap", func(ctx context.Context) (ExplainResult, error) {
		settings, _, err := s.loadSettings(ctx, leagueID)
		if err != nil {
			return results.FailureResult[ExplainPayload](ExplainFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Reason:   fmt.Sprintf("failed to load league settings: %v", err),
			}), nil
		}

		scores, err := s.repo.GetScores(ctx, leagueID, teamID)
		if err != nil {
			return results.FailureResult[ExplainPayload](ExplainFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Reason:   fmt.Sprintf("failed to load score history: %v", err),
			}), nil
		}

		handicap := handicapdomain.Calculate(scores, settings, week)
		steps := handicapdomain.Describe(scores, settings, week, handicap)

		return results.SuccessResult[ExplainPayload, ExplainFailedPayload](ExplainPayload{
			LeagueID: leagueID,
			TeamID:   teamID,
			Handicap: handicap,
			Steps:    steps,
		}), nil
	})
}
