package handicapdomain

import (
	"math"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Applied returns the portion of a computed handicap the league actually grants,
// per the configured percentage, rounded with the league's rounding mode.
func Applied(h sharedtypes.HandicapValue, s Settings) sharedtypes.HandicapValue {
	return sharedtypes.HandicapValue(applyRounding(float64(h)*s.Percentage/100, s.Rounding))
}

// NetScore subtracts the handicap from a gross score, keeping one decimal place
// (half-up).
func NetScore(gross sharedtypes.Score, h sharedtypes.HandicapValue) float64 {
	return math.Round((float64(gross)-float64(h))*10) / 10
}

// StrokeAllocation is the strokes given to each side of a matchup.
type StrokeAllocation struct {
	TeamA int
	TeamB int
}

// StrokesGiven resolves the allowance policy for a head-to-head matchup.
//
//   - full: each side receives its own handicap unmodified.
//   - difference: only the higher-handicap side receives strokes, equal to the gap.
//   - percentage: each side receives its applied handicap, derived independently.
//
// Regardless of policy, when MaxStrokes is set and the gap between the two sides
// exceeds it, the larger side is reduced to the smaller plus MaxStrokes. Results
// never go below zero.
func StrokesGiven(a, b sharedtypes.HandicapValue, s Settings) StrokeAllocation {
	var strokesA, strokesB int

	switch s.AllowanceType {
	case AllowanceDifference:
		if a > b {
			strokesA = int(a - b)
		} else if b > a {
			strokesB = int(b - a)
		}
	case AllowancePercentage:
		strokesA = int(Applied(a, s))
		strokesB = int(Applied(b, s))
	default:
		strokesA = int(a)
		strokesB = int(b)
	}

	if s.MaxStrokes != nil {
		gap := strokesA - strokesB
		if gap < 0 {
			gap = -gap
		}
		if gap > *s.MaxStrokes {
			if strokesA > strokesB {
				strokesA = strokesB + *s.MaxStrokes
			} else {
				strokesB = strokesA + *s.MaxStrokes
			}
		}
	}

	if strokesA < 0 {
		strokesA = 0
	}
	if strokesB < 0 {
		strokesB = 0
	}

	return StrokeAllocation{TeamA: strokesA, TeamB: strokesB}
}

// PointsSuggestion is the suggested match points for each side.
type PointsSuggestion struct {
	TeamAPoints int
	TeamBPoints int
}

// SuggestPoints proposes match points from two net scores: lower net wins 2-0,
// equal nets split 1-1. Calling code may override before persisting.
func SuggestPoints(netA, netB float64) PointsSuggestion {
	switch {
	case netA < netB:
		return PointsSuggestion{TeamAPoints: 2, TeamBPoints: 0}
	case netB < netA:
		return PointsSuggestion{TeamAPoints: 0, TeamBPoints: 2}
	default:
		return PointsSuggestion{TeamAPoints: 1, TeamBPoints: 1}
	}
}
