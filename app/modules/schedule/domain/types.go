// Package scheduledomain implements the round-robin season scheduler: pure
// generation of exhaustive, balanced, non-repeating weekly pairings, plus a
// validator for generated or hand-edited schedules.
package scheduledomain

import sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"

// Match pairs two teams for one week. A nil TeamB marks a bye for TeamA.
type Match struct {
	TeamA sharedtypes.TeamID
	TeamB *sharedtypes.TeamID
}

// IsBye reports whether the match is a bye.
func (m Match) IsBye() bool {
	return m.TeamB == nil
}

// Round is one week of play: a week number and its matches. Across a valid
// round, every team in the league appears exactly once, playing or on bye.
type Round struct {
	Week    sharedtypes.Week
	Matches []Match
}

// ValidationResult reports schedule integrity against a team universe. Problems
// are collected as human-readable strings; nothing in this package panics or
// returns errors for bad schedules.
type ValidationResult struct {
	Valid           bool
	Errors          []string
	MatchesPerTeam  map[sharedtypes.TeamID]int
	ByeDistribution map[sharedtypes.TeamID]int
}
