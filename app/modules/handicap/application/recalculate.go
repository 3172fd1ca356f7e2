package handicapservice

import (
	"context"
	"fmt"
	"time"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
	handicapdb "github.com/MasterObie1/golf-sub003/app/modules/handicap/infrastructure/repositories"
	"github.com/MasterObie1/golf-sub003/app/shared/observability/attr"
	"github.com/MasterObie1/golf-sub003/app/shared/results"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// RecalculatedPayload reports a completed recalculation.
type RecalculatedPayload struct {
	LeagueID        sharedtypes.LeagueID
	TeamID          sharedtypes.TeamID
	Week            sharedtypes.Week
	Handicap        sharedtypes.HandicapValue
	Applied         sharedtypes.HandicapValue
	ScoresUsed      int
	PendingApproval bool
}

// RecalculationFailedPayload reports a recalculation that could not complete.
type RecalculationFailedPayload struct {
	LeagueID sharedtypes.LeagueID
	TeamID   sharedtypes.TeamID
	Week     sharedtypes.Week
	Reason   string
}

// RecalculateResult is the envelope for RecalculateForTeam.
type RecalculateResult = results.OperationResult[RecalculatedPayload, RecalculationFailedPayload]

// RecalculateForTeam recomputes a team's handicap for the given week.
//
// The engine itself only knows the week number; freeze-week enforcement happens
// here. When the league requires approval, the computed value is returned
// flagged as pending and nothing is persisted until an admin confirms it.
func (s *HandicapService) RecalculateForTeam(
	ctx context.Context,
	leagueID sharedtypes.LeagueID,
	teamID sharedtypes.TeamID,
	week sharedtypes.Week,
) (RecalculateResult, error) {
	s.logger.InfoContext(ctx, "Recalculating team handicap",
		attr.ExtractCorrelationID(ctx),
		attr.String("league_id", leagueID.String()),
		attr.Int64("team_id", int64(teamID)),
		attr.Int("week", int(week)),
	)

	return withTelemetry(s, ctx, "RecalculateForTeam", func(ctx context.Context) (RecalculateResult, error) {
		settings, preset, err := s.loadSettings(ctx, leagueID)
		if err != nil {
			return results.FailureResult[RecalculatedPayload](RecalculationFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Week:     week,
				Reason:   fmt.Sprintf("failed to load league settings: %v", err),
			}), nil
		}

		if settings.FreezeWeek != nil && int(week) > *settings.FreezeWeek {
			s.metrics.RecordFrozenSkip(ctx)
			return results.FailureResult[RecalculatedPayload](RecalculationFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Week:     week,
				Reason:   fmt.Sprintf("handicaps are frozen after week %d", *settings.FreezeWeek),
			}), nil
		}

		scores, err := s.repo.GetScores(ctx, leagueID, teamID)
		if err != nil {
			return results.FailureResult[RecalculatedPayload](RecalculationFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Week:     week,
				Reason:   fmt.Sprintf("failed to load score history: %v", err),
			}), nil
		}

		handicap := handicapdomain.Calculate(scores, settings, week)
		applied := handicapdomain.Applied(handicap, settings)
		s.metrics.RecordRecalculation(ctx, string(preset))

		payload := RecalculatedPayload{
			LeagueID:   leagueID,
			TeamID:     teamID,
			Week:       week,
			Handicap:   handicap,
			Applied:    applied,
			ScoresUsed: len(scores),
		}

		if settings.RequireApproval {
			s.metrics.RecordPendingApproval(ctx)
			payload.PendingApproval = true
			s.logger.InfoContext(ctx, "Recalculated handicap held for approval",
				attr.ExtractCorrelationID(ctx),
				attr.Int64("team_id", int64(teamID)),
				attr.Int("handicap", int(handicap)),
			)
			return results.SuccessResult[RecalculatedPayload, RecalculationFailedPayload](payload), nil
		}

		if err := s.repo.SaveHandicap(ctx, handicapdb.HandicapRecord{
			LeagueID:   leagueID,
			TeamID:     teamID,
			Week:       week,
			Handicap:   handicap,
			Applied:    applied,
			ComputedAt: time.Now().UTC(),
		}); err != nil {
			return results.FailureResult[RecalculatedPayload](RecalculationFailedPayload{
				LeagueID: leagueID,
				TeamID:   teamID,
				Week:     week,
				Reason:   fmt.Sprintf("failed to persist handicap: %v", err),
			}), nil
		}

		return results.SuccessResult[RecalculatedPayload, RecalculationFailedPayload](payload), nil
	})
}

// loadSettings composes a complete Settings record from the stored preset and
// field-level overrides: overrides merge onto the preset applied to the full
// default set, never onto previously active settings.
func (s *HandicapService) loadSettings(ctx context.Context, leagueID sharedtypes.LeagueID) (handicapdomain.Settings, handicapdomain.Preset, error) {
	record, err := s.repo.GetLeagueSettings(ctx, leagueID)
	if err != nil {
		return handicapdomain.Settings{}, "", err
	}
	base := handicapdomain.SettingsForPreset(record.Preset)
	return record.Overrides.Apply(base), record.Preset, nil
}
