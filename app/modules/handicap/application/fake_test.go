package handicapservice

import (
	"context"

	handicapdb "github.com/MasterObie1/golf-sub003/app/modules/handicap/infrastructure/repositories"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// fakeRepository is a programmable in-memory Repository. Tests set the Func
// fields they care about; unset functions return zero values. Calls records
// the invocation order and Saved collects successfully persisted records.
type fakeRepository struct {
	GetLeagueSettingsFunc func(ctx context.Context, leagueID sharedtypes.LeagueID) (handicapdb.LeagueSettingsRecord, error)
	GetScoresFunc         func(ctx context.Context, leagueID sharedtypes.LeagueID, teamID sharedtypes.TeamID) ([]sharedtypes.Score, error)
	SaveHandicapFunc      func(ctx context.Context, record handicapdb.HandicapRecord) error

	Calls []string
	Saved []handicapdb.HandicapRecord
}

func (f *fakeRepository) GetLeagueSettings(ctx context.Context, leagueID sharedtypes.LeagueID) (handicapdb.LeagueSettingsRecord, error) {
	f.Calls = append(f.Calls, "GetLeagueSettings")
	if f.GetLeagueSettingsFunc != nil {
		return f.GetLeagueSettingsFunc(ctx, leagueID)
	}
	return handicapdb.LeagueSettingsRecord{}, nil
}

func (f *fakeRepository) GetScores(ctx context.Context, leagueID sharedtypes.LeagueID, teamID sharedtypes.TeamID) ([]sharedtypes.Score, error) {
	f.Calls = append(f.Calls, "GetScores")
	if f.GetScoresFunc != nil {
		return f.GetScoresFunc(ctx, leagueID, teamID)
	}
	return nil, nil
}

func (f *fakeRepository) SaveHandicap(ctx context.Context, record handicapdb.HandicapRecord) error {
	f.Calls = append(f.Calls, "SaveHandicap")
	if f.SaveHandicapFunc != nil {
		if err := f.SaveHandicapFunc(ctx, record); err != nil {
			return err
		}
	}
	f.Saved = append(f.Saved, record)
	return nil
}
