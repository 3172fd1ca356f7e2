// Package handicapdb declares the persistence surface the handicap service
// depends on. Storage itself lives outside this repository; hosts supply an
// implementation backed by whatever the surrounding application uses.
package handicapdb

import (
	"context"
	"time"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// LeagueSettingsRecord is the stored shape of a league's handicap
// configuration: a preset name plus the admin's field-level overrides. The
// service composes the full Settings from it.
type LeagueSettingsRecord struct {
	LeagueID  sharedtypes.LeagueID
	Preset    handicapdomain.Preset
	Overrides handicapdomain.Overrides
}

// HandicapRecord is a computed handicap ready for storage.
type HandicapRecord struct {
	LeagueID   sharedtypes.LeagueID
	TeamID     sharedtypes.TeamID
	Week       sharedtypes.Week
	Handicap   sharedtypes.HandicapValue
	Applied    sharedtypes.HandicapValue
	ComputedAt time.Time
}

// Repository is the handicap service's view of storage.
type Repository interface {
	// GetLeagueSettings returns the stored settings record for a league.
	GetLeagueSettings(ctx context.Context, leagueID sharedtypes.LeagueID) (LeagueSettingsRecord, error)

	// GetScores returns a team's per-week gross totals, oldest first.
	GetScores(ctx context.Context, leagueID sharedtypes.LeagueID, teamID sharedtypes.TeamID) ([]sharedtypes.Score, error)

	// SaveHandicap persists a recalculated handicap.
	SaveHandicap(ctx context.Context, record HandicapRecord) error
}
