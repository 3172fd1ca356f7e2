package handicapdomain

import (
	"fmt"
	"strconv"
	"strings"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Describe re-runs the calculation pipeline purely to produce a human-readable
// audit trail, one line per stage that did something. It calls the same stage
// helpers as Calculate, so the two cannot drift apart. final is the handicap the
// caller got from Calculate for the same inputs.
func Describe(scores []sharedtypes.Score, s Settings, week sharedtypes.Week, final sharedtypes.HandicapValue) []string {
	var steps []string

	if len(scores) == 0 {
		steps = append(steps, fmt.Sprintf("No scores recorded; using default handicap %d.", s.DefaultHandicap))
		return steps
	}

	capped := capScores(scores, s)
	if s.CapExceptional && s.ExceptionalCap != nil {
		n := 0
		for i := range scores {
			if capped[i] != scores[i] {
				n++
			}
		}
		if n > 0 {
			steps = append(steps, fmt.Sprintf("Capped %d exceptional score(s) to %s.", n, formatNum(*s.ExceptionalCap)))
		}
	}

	selected := selectScores(capped, s)
	switch s.Selection {
	case SelectLastN:
		if s.ScoreCount > 0 {
			steps = append(steps, fmt.Sprintf("Selected the last %d of %d scores: %s.", len(selected), len(capped), formatScores(selected)))
		} else {
			steps = append(steps, fmt.Sprintf("Using all %d scores.", len(selected)))
		}
	case SelectBestOfLast:
		if s.BestOf > 0 && s.LastOf > 0 {
			steps = append(steps, fmt.Sprintf("Selected the best %d of the last %d scores: %s.", len(selected), s.LastOf, formatScores(selected)))
		} else {
			steps = append(steps, fmt.Sprintf("Using all %d scores.", len(selected)))
		}
	default:
		steps = append(steps, fmt.Sprintf("Using all %d scores.", len(selected)))
	}

	surviving := dropScores(selected, s.DropHighest, s.DropLowest)
	if len(surviving) < len(selected) {
		steps = append(steps, fmt.Sprintf("Dropped %d extreme score(s) (%d highest, %d lowest); remaining: %s.",
			len(selected)-len(surviving), s.DropHighest, s.DropLowest, formatScores(surviving)))
	}

	if len(surviving) == 0 {
		steps = append(steps, fmt.Sprintf("No scores remain after selection; using default handicap %d.", s.DefaultHandicap))
		return steps
	}

	avg := average(surviving, s)
	if s.UseWeighting && len(surviving) >= 2 {
		steps = append(steps, fmt.Sprintf("Weighted average (recent weight %s, decay %s): %s.",
			formatNum(s.WeightRecent), formatNum(s.WeightDecay), formatNum(avg)))
	} else {
		steps = append(steps, fmt.Sprintf("Average of %d score(s): %s.", len(surviving), formatNum(avg)))
	}

	raw := (avg - s.BaseScore) * s.Multiplier
	steps = append(steps, fmt.Sprintf("Formula: (%s - %s) x %s = %s.",
		formatNum(avg), formatNum(s.BaseScore), formatNum(s.Multiplier), formatNum(raw)))

	if adj := trendAdjustment(capped, s); adj != 0 {
		raw -= adj
		direction := "improving"
		if adj < 0 {
			direction = "declining"
		}
		steps = append(steps, fmt.Sprintf("Trend adjustment (%s form over full history): %s subtracted, giving %s.",
			direction, formatNum(adj), formatNum(raw)))
	}

	if week > 0 && s.ProvWeeks > 0 && int(week) <= s.ProvWeeks {
		raw *= s.ProvMultiplier
		steps = append(steps, fmt.Sprintf("Provisional period (week %d of %d): multiplied by %s, giving %s.",
			week, s.ProvWeeks, formatNum(s.ProvMultiplier), formatNum(raw)))
	}

	rounded := applyRounding(raw, s.Rounding)
	steps = append(steps, fmt.Sprintf("Rounded (%s) to %d.", s.Rounding, rounded))

	clamped := clampCaps(rounded, s)
	if clamped != rounded {
		if s.MaxHandicap != nil && clamped == *s.MaxHandicap {
			steps = append(steps, fmt.Sprintf("Capped at league maximum %d.", *s.MaxHandicap))
		} else if s.MinHandicap != nil && clamped == *s.MinHandicap {
			steps = append(steps, fmt.Sprintf("Raised to league minimum %d.", *s.MinHandicap))
		}
	}

	steps = append(steps, fmt.Sprintf("Final handicap: %d.", final))

	if s.Percentage != 100 {
		steps = append(steps, fmt.Sprintf("Applied %s%% allowance: %d strokes granted.",
			formatNum(s.Percentage), Applied(final, s)))
	}

	return steps
}

func formatNum(v float64) string {
	out := strconv.FormatFloat(v, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

func formatScores(scores []sharedtypes.Score) string {
	parts := make([]string, len(scores))
	for i, v := range scores {
		parts[i] = formatNum(float64(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
