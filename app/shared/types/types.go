// Package sharedtypes holds the identifier and value types shared across league modules.
package sharedtypes

import "github.com/google/uuid"

// LeagueID identifies a league.
type LeagueID uuid.UUID

func (id LeagueID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero UUID.
func (id LeagueID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// TeamID identifies a registered team within a league.
type TeamID int64

// Week is a 1-based week number within a season. Zero means "week unknown".
type Week int

// Score is a gross strokes-taken total for one team in one week.
type Score float64

// HandicapValue is a computed, rounded handicap.
type HandicapValue int
