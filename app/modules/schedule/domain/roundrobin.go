package scheduledomain

import sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"

// byeSlot is the synthetic placeholder padded into odd-sized fields. It is
// stripped before rounds are returned; the team it was paired with gets a bye.
const byeSlot = -1

// GenerateSingleRoundRobin builds a full single round robin via the circle
// method: the first slot stays fixed while the remaining slots rotate one
// position per round, so every unordered pair meets exactly once across N-1
// rounds (N padded to even). Week numbers run sequentially from startWeek.
// Fewer than two teams yields an empty schedule.
func GenerateSingleRoundRobin(teams []sharedtypes.TeamID, startWeek sharedtypes.Week) []Round {
	if len(teams) < 2 {
		return nil
	}
	if startWeek < 1 {
		startWeek = 1
	}

	slots := make([]int64, 0, len(teams)+1)
	for _, id := range teams {
		slots = append(slots, int64(id))
	}
	if len(slots)%2 != 0 {
		slots = append(slots, byeSlot)
	}

	n := len(slots)
	rounds := make([]Round, 0, n-1)

	for r := 0; r < n-1; r++ {
		matches := make([]Match, 0, n/2)
		for i := 0; i < n/2; i++ {
			a := slots[circleIndex(i, r, n)]
			b := slots[circleIndex(n-1-i, r, n)]

			switch {
			case a == byeSlot:
				matches = append(matches, Match{TeamA: sharedtypes.TeamID(b)})
			case b == byeSlot:
				matches = append(matches, Match{TeamA: sharedtypes.TeamID(a)})
			default:
				opponent := sharedtypes.TeamID(b)
				matches = append(matches, Match{TeamA: sharedtypes.TeamID(a), TeamB: &opponent})
			}
		}
		rounds = append(rounds, Round{
			Week:    startWeek + sharedtypes.Week(r),
			Matches: matches,
		})
	}

	return rounds
}

// circleIndex maps a position to its slot for rotation r: position 0 is fixed,
// positions 1..n-1 rotate forward by r.
func circleIndex(pos, r, n int) int {
	if pos == 0 {
		return 0
	}
	return (pos-1+r)%(n-1) + 1
}

// GenerateDoubleRoundRobin runs the single round robin twice. The second cycle
// repeats the pairings with home and away swapped, so a pair meeting as A-vs-B
// in the first half meets as B-vs-A in the second. Week numbers stay sequential
// across both halves.
func GenerateDoubleRoundRobin(teams []sharedtypes.TeamID, startWeek sharedtypes.Week) []Round {
	first := GenerateSingleRoundRobin(teams, startWeek)
	if len(first) == 0 {
		return nil
	}

	rounds := make([]Round, 0, 2*len(first))
	rounds = append(rounds, first...)

	nextWeek := first[len(first)-1].Week + 1
	for i, round := range first {
		matches := make([]Match, 0, len(round.Matches))
		for _, m := range round.Matches {
			if m.IsBye() {
				matches = append(matches, Match{TeamA: m.TeamA})
				continue
			}
			home := *m.TeamB
			away := m.TeamA
			matches = append(matches, Match{TeamA: home, TeamB: &away})
		}
		rounds = append(rounds, Round{
			Week:    nextWeek + sharedtypes.Week(i),
			Matches: matches,
		})
	}

	return rounds
}

// GenerateForWeeks produces a season of at most totalWeeks rounds from a single
// or double round robin. A cycle shorter than totalWeeks is returned uncut; the
// scheduler never repeats pairings beyond what the double robin itself provides.
// Degenerate input (fewer than two teams, non-positive weeks) yields an empty
// schedule.
func GenerateForWeeks(teams []sharedtypes.TeamID, totalWeeks int, double bool, startWeek sharedtypes.Week) []Round {
	if len(teams) < 2 || totalWeeks <= 0 {
		return nil
	}

	var rounds []Round
	if double {
		rounds = GenerateDoubleRoundRobin(teams, startWeek)
	} else {
		rounds = GenerateSingleRoundRobin(teams, startWeek)
	}

	if len(rounds) > totalWeeks {
		rounds = rounds[:totalWeeks]
	}
	return rounds
}
