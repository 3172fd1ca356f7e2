package scheduledomain

import (
	"fmt"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Validate checks a schedule (generated or hand-edited) against a team universe:
// every referenced ID must be known, no team may appear twice in one round, and
// every team must appear in every round, playing or on bye. It reports rather
// than rejects; callers decide whether to repair or discard. An empty schedule
// is vacuously valid.
func Validate(rounds []Round, teams []sharedtypes.TeamID) ValidationResult {
	result := ValidationResult{
		MatchesPerTeam:  make(map[sharedtypes.TeamID]int, len(teams)),
		ByeDistribution: make(map[sharedtypes.TeamID]int),
	}

	known := make(map[sharedtypes.TeamID]bool, len(teams))
	for _, id := range teams {
		known[id] = true
		result.MatchesPerTeam[id] = 0
	}

	for _, round := range rounds {
		seen := make(map[sharedtypes.TeamID]bool, len(teams))

		appear := func(id sharedtypes.TeamID) {
			if !known[id] {
				result.Errors = append(result.Errors, fmt.Sprintf("Unknown team %d", id))
			}
			if seen[id] {
				result.Errors = append(result.Errors, fmt.Sprintf("Team %d appears twice in week %d", id, round.Week))
			}
			seen[id] = true
		}

		for _, m := range round.Matches {
			appear(m.TeamA)
			if m.IsBye() {
				result.ByeDistribution[m.TeamA]++
				continue
			}
			appear(*m.TeamB)
			result.MatchesPerTeam[m.TeamA]++
			result.MatchesPerTeam[*m.TeamB]++
		}

		for _, id := range teams {
			if !seen[id] {
				result.Errors = append(result.Errors, fmt.Sprintf("Team %d has no match or bye in week %d", id, round.Week))
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// ByeDistribution counts byes per team across the given rounds. Teams with no
// byes are omitted from the map.
func ByeDistribution(rounds []Round) map[sharedtypes.TeamID]int {
	byes := make(map[sharedtypes.TeamID]int)
	for _, round := range rounds {
		for _, m := range round.Matches {
			if m.IsBye() {
				byes[m.TeamA]++
			}
		}
	}
	return byes
}
