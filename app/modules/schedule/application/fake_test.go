package scheduleservice

import (
	"context"

	scheduledomain "github.com/MasterObie1/golf-sub003/app/modules/schedule/domain"
	scheduledb "github.com/MasterObie1/golf-sub003/app/modules/schedule/infrastructure/repositories"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// fakeRepository is a programmable in-memory Repository. Tests set the Func
// fields they care about; unset functions return zero values. Calls records
// the invocation order and Saved collects persisted schedules.
type fakeRepository struct {
	GetSeasonConfigFunc    func(ctx context.Context, leagueID sharedtypes.LeagueID) (scheduledb.SeasonConfig, error)
	GetApprovedTeamIDsFunc func(ctx context.Context, leagueID sharedtypes.LeagueID) ([]sharedtypes.TeamID, error)
	SaveRoundsFunc         func(ctx context.Context, leagueID sharedtypes.LeagueID, rounds []scheduledomain.Round) error
	GetRoundsFunc          func(ctx context.Context, leagueID sharedtypes.LeagueID) ([]scheduledomain.Round, error)

	Calls []string
	Saved [][]scheduledomain.Round
}

func (f *fakeRepository) GetSeasonConfig(ctx context.Context, leagueID sharedtypes.LeagueID) (scheduledb.SeasonConfig, error) {
	f.Calls = append(f.Calls, "GetSeasonConfig")
	if f.GetSeasonConfigFunc != nil {
		return f.GetSeasonConfigFunc(ctx, leagueID)
	}
	return scheduledb.SeasonConfig{}, nil
}

func (f *fakeRepository) GetApprovedTeamIDs(ctx context.Context, leagueID sharedtypes.LeagueID) ([]sharedtypes.TeamID, error) {
	f.Calls = append(f.Calls, "GetApprovedTeamIDs")
	if f.GetApprovedTeamIDsFunc != nil {
		return f.GetApprovedTeamIDsFunc(ctx, leagueID)
	}
	return nil, nil
}

func (f *fakeRepository) SaveRounds(ctx context.Context, leagueID sharedtypes.LeagueID, rounds []scheduledomain.Round) error {
	f.Calls = append(f.Calls, "SaveRounds")
	if f.SaveRoundsFunc != nil {
		if err := f.SaveRoundsFunc(ctx, leagueID, rounds); err != nil {
			return err
		}
	}
	f.Saved = append(f.Saved, rounds)
	return nil
}

func (f *fakeRepository) GetRounds(ctx context.Context, leagueID sharedtypes.LeagueID) ([]scheduledomain.Round, error) {
	f.Calls = append(f.Calls, "GetRounds")
	if f.GetRoundsFunc != nil {
		return f.GetRoundsFunc(ctx, leagueID)
	}
	return nil, nil
}
