package scheduleservice

import (
	"context"
	"fmt"

	scheduledomain "github.com/MasterObie1/golf-sub003/app/modules/schedule/domain"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// ScheduleValidatedPayload carries the validation report for a stored schedule.
// A report full of integrity errors is still a successful validation; callers
// decide whether to reject, repair, or surface the problems to an admin.
type ScheduleValidatedPayload struct {
	LeagueID sharedtypes.LeagueID
	Report   scheduledomain.ValidationResult
}

// ScheduleValidationFailedPayload reports a validation that could not run.
type ScheduleValidationFailedPayload struct {
	LeagueID sharedtypes.LeagueID
	Reason   string
}

// ValidateStoredResult is the envelope for ValidateStored.
type ValidateStoredResult = results.OperationResult[ScheduleValidatedPayload, ScheduleValidationFailedPayload]

// ValidateStored checks the league's stored schedule, which an admin may have
// edited by hand, against the approved team list.
func (s *ScheduleService) ValidateStored(ctx context.Context, leagueID sharedtypes.LeagueID) (ValidateStoredResult, error) {
	s.logger.InfoContext(ctx, "Validating stored schedule",
		attr.ExtractCorrelationID(ctx),
		attr.String("league_id", leagueID.String()),
	)

	return withTelemetry(s, ctx, "ValidateStored", func(ctx context.Context) (ValidateStoredResult, error) {
		rounds, err := s.repo.GetRounds(ctx, leagueID)
		if err != nil {
			return results.FailureResult[ScheduleValidatedPayload](ScheduleValidationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("failed to load stored schedule: %v", err),
			}), nil
		}

		teams, err := s.repo.GetApprovedTeamIDs(ctx, leagueID)
		if err != nil {
			return results.FailureResult[ScheduleValidatedPayload](ScheduleValidationFailedPayload{
				LeagueID: leagueID,
				Reason:   fmt.Sprintf("failed to load approved teams: %v", err),
			}), nil
		}

		report := scheduledomain.Validate(rounds, teams)
		if len(report.Errors) > 0 {
			s.metrics.RecordValidationErrors(ctx, len(report.Errors))
			s.logger.WarnContext(ctx, "Stored schedule has integrity errors",
				attr.ExtractCorrelationID(ctx),
				attr.String("league_id", leagueID.String()),
				attr.Int("error_count", len(report.Errors)),
			)
		}

		return results.SuccessResult[ScheduleValidatedPayload, ScheduleValidationFailedPayload](ScheduleValidatedPayload{
			LeagueID: leagueID,
			Report:   report,
		}), nil
	})
}
