package handicapservice

import (
	"context"
	"fmt"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// MatchupInput identifies the two sides of a matchup and their gross scores for
// the week being entered.
type MatchupInput struct {
	LeagueID sharedtypes.LeagueID
	TeamA    sharedtypes.TeamID
	TeamB    sharedtypes.TeamID
	GrossA   sharedtypes.Score
	GrossB   sharedtypes.Score
	Week     sharedtypes.Week
}

// MatchupPreviewPayload is everything an admin's score-entry form pre-fills.
// Suggested points are a suggestion only; the admin may override before
// submission.
type MatchupPreviewPayload struct {
	HandicapA sharedtypes.HandicapValue
	HandicapB sharedtypes.HandicapValue
	Strokes   handicapdomain.StrokeAllocation
	NetA      float64
	NetB      float64
	Points    handicapdomain.PointsSuggestion
}

// MatchupFailedPayload reports a preview that could not be computed.
type MatchupFailedPayload struct {
	LeagueID sharedtypes.LeagueID
	Reason   string
}

// MatchupResult is the envelope for PreviewMatchup.
type MatchupResult = results.OperationResult[MatchupPreviewPayload, MatchupFailedPayload]

// PreviewMatchup computes strokes given, net scores, and suggested points for a
// head-to-head matchup. It reads settings and score history but persists nothing.
func (s *HandicapService) PreviewMatchup(ctx context.Context, input MatchupInput) (MatchupResult, error) {
	s.logger.InfoContext(ctx, "Previewing matchup",
		attr.ExtractCorrelationID(ctx),
		attr.String("league_id", input.LeagueID.String()),
		attr.Int64("team_a", int64(input.TeamA)),
		attr.Int64("team_b", int64(input.TeamB)),
	)

	return withTelemetry(s, ctx, "PreviewMatchup", func(ctx context.Context) (MatchupResult, error) {
		settings, _, err := s.loadSettings(ctx, input.LeagueID)
		if err != nil {
			return results.FailureResult[MatchupPreviewPayload](MatchupFailedPayload{
				LeagueID: input.LeagueID,
				Reason:   fmt.Sprintf("failed to load league settings: %v", err),
			}), nil
		}

		handicapA, err := s.teamHandicap(ctx, input.LeagueID, input.TeamA, settings, input.Week)
		if err != nil {
			return results.FailureResult[MatchupPreviewPayload](MatchupFailedPayload{
				LeagueID: input.LeagueID,
				Reason:   fmt.Sprintf("failed to load scores for team %d: %v", input.TeamA, err),
			}), nil
		}
		handicapB, err := s.teamHandicap(ctx, input.LeagueID, input.TeamB, settings, input.Week)
		if err != nil {
			return results.FailureResult[MatchupPreviewPayload](MatchupFailedPayload{
				LeagueID: input.LeagueID,
				Reason:   fmt.Sprintf("failed to load scores for team %d: %v", input.TeamB, err),
			}), nil
		}

		strokes := handicapdomain.StrokesGiven(handicapA, handicapB, settings)
		netA := handicapdomain.NetScore(input.GrossA, sharedtypes.HandicapValue(strokes.TeamA))
		netB := handicapdomain.NetScore(input.GrossB, sharedtypes.HandicapValue(strokes.TeamB))

		return results.SuccessResult[MatchupPreviewPayload, MatchupFailedPayload](MatchupPreviewPayload{
			HandicapA: handicapA,
			HandicapB: handicapB,
			Strokes:   strokes,
			NetA:      netA,
			NetB:      netB,
			Points:    handicapdomain.SuggestPoints(netA, netB),
		}), nil
	})
}

func (s *HandicapService) teamHandicap(
	ctx context.Context,
	leagueID sharedtypes.LeagueID,
	teamID sharedtypes.TeamID,
	settings handicapdomain.Settings,
	week sharedtypes.Week,
) (sharedtypes.HandicapValue, error) {
	scores, err := s.repo.GetScores(ctx, leagueID, teamID)
	if err != nil {
		return 0, err
	}
	return handicapdomain.Calculate(scores, settings, week), nil
}
