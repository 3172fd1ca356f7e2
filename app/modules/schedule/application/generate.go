package scheduleservice

import (
	"context"
	"fmt"

	scheduledomain "github.com/MasterObie1/golf-sub003/app/modules/schedule/domain"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// SeasonGeneratedPayload reports a generated and persisted season schedule.
type SeasonGeneratedPayload struct {
	LeagueID        sharedtypes.LeagueID
	Teams           int
	Rounds          []scheduledomain.Round
	ByeDistribution map[sharedtypes.TeamID]int
}

// SeasonGenerationFailedPayload reports a season that could not be generated.
type SeasonGenerationFailedPayload struct {
	LeagueID sharedtypes.LeagueID
	Reason   string
}

// GenerateSeasonResult is the envelope for GenerateSeason.
type GenerateSeasonResult = results.OperationResult[SeasonGeneratedPayload, SeasonGenerationFailedPayload]

// GenerateSeason builds the league's fixture list: a single or double round
// robin over the approved teams, truncated to the configured number of weeks.
// The generated schedule is validated as a self-check before persisting.
func (s *ScheduleService) GenerateSeason(ctx context.Context, leagueID sharedtypes.LeagueID) (GenerateSeasonResult, error) {
	s.logger.InfoContext(ctx, "Generating season schedule",
		attr.ExtractCorrelationID(ctx),
		attr.String("league_id", leagueID.String()),
	)

	return withTelemetry(s, ctx, "GenerateSeason", func(ctx context.Context) (GenerateSeasonResult, error) {
		config, err := s.repo.GetSeasonConfig(ctx, leagueID)
		if err != nil {
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("failed to load season config: %v", err),
			}), nil
		}

		teams, err := s.repo.GetApprovedTeamIDs(ctx, leagueID)
		if err != nil {
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("failed to load approved teams: %v", err),
			}), nil
		}

		if len(teams) < 2 {
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("need at least 2 approved teams, have %d", len(teams)),
			}), nil
		}

		startWeek := config.StartWeek
		if startWeek < 1 {
			startWeek = 1
		}

		rounds := scheduledomain.GenerateForWeeks(teams, config.TotalWeeks, config.DoubleRoundRobin, startWeek)
		if len(rounds) == 0 {
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("no rounds generated for %d teams over %d weeks", len(teams), config.TotalWeeks),
			}), nil
		}

		// The generator upholds the round-robin invariants by construction;
		// validating here catches regressions before they reach storage.
		validation := scheduledomain.Validate(rounds, teams)
		if !validation.Valid {
			s.metrics.RecordValidationErrors(ctx, len(validation.Errors))
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("generated schedule failed validation: %v", validation.Errors),
			}), nil
		}

		if err := s.repo.SaveRounds(ctx, leagueID, rounds); err != nil {
			return results.FailureResult[SeasonGeneratedPayload](SeasonGenerationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("failed to persist schedule: %v", err),
			}), nil
		}

		s.metrics.RecordSeasonGenerated(ctx, len(teams), len(rounds))
		s.logger.InfoContext(ctx, "Season schedule generated",
			attr.ExtractCorrelationID(ctx),
			attr.String("league_id", leagueID.String()),
			attr.Int("teams", len(teams)),
			attr.Int("rounds", len(rounds)),
			attr.Bool("double", config.DoubleRoundRobin),
		)

		return results.SuccessResult[SeasonGeneratedPayload, SeasonGenerationFailedPayload](SeasonGeneratedPayload{
			LeagueID:        leagueID,
			Teams:           len(teams),
			Rounds:          rounds,
			ByeDistribution: scheduledomain.ByeDistribution(rounds),
		}), nil
	})
}
