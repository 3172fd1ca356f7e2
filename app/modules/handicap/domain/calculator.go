package handicapdomain

import (
	"cmp"
	"math"
	"slices"

	sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"
)

// Calculate runs the full handicap pipeline over a chronological score history
// (oldest first) and a fully populated Settings record. week is the 1-based
// current week and only matters for the provisional-period stage; pass 0 when
// the week is unknown.
//
// The stages run in a fixed order: cap exceptional scores, select, drop
// extremes, average, base formula, trend adjustment, provisional multiplier,
// rounding, caps. Reordering changes results.
func Calculate(scores []sharedtypes.Score, s Settings, week sharedtypes.Week) sharedtypes.HandicapValue {
	if len(scores) == 0 {
		return s.DefaultHandicap
	}

	capped := capScores(scores, s)
	surviving := dropScores(selectScores(capped, s), s.DropHighest, s.DropLowest)
	if len(surviving) == 0 {
		return s.DefaultHandicap
	}

	avg := average(surviving, s)
	raw := (avg - s.BaseScore) * s.Multiplier

	// Trend is measured over the full capped history, not the selected subset.
	raw -= trendAdjustment(capped, s)

	if week > 0 && s.ProvWeeks > 0 && int(week) <= s.ProvWeeks {
		raw *= s.ProvMultiplier
	}

	return sharedtypes.HandicapValue(clampCaps(applyRounding(raw, s.Rounding), s))
}

// capScores clamps every score to at most ExceptionalCap when exceptional-score
// capping is enabled. Scores below the cap are untouched. The input is never
// mutated.
func capScores(scores []sharedtypes.Score, s Settings) []sharedtypes.Score {
	if !s.CapExceptional || s.ExceptionalCap == nil {
		return scores
	}
	limit := sharedtypes.Score(*s.ExceptionalCap)
	out := make([]sharedtypes.Score, len(scores))
	for i, v := range scores {
		if v > limit {
			v = limit
		}
		out[i] = v
	}
	return out
}

// selectScores applies the configured selection method. Missing or non-positive
// parameters degrade to "all". Survivors keep their chronological order.
func selectScores(scores []sharedtypes.Score, s Settings) []sharedtypes.Score {
	switch s.Selection {
	case SelectLastN:
		if s.ScoreCount <= 0 || s.ScoreCount >= len(scores) {
			return scores
		}
		return scores[len(scores)-s.ScoreCount:]

	case SelectBestOfLast:
		if s.BestOf <= 0 || s.LastOf <= 0 {
			return scores
		}
		window := scores
		if s.LastOf < len(scores) {
			window = scores[len(scores)-s.LastOf:]
		}
		if s.BestOf >= len(window) {
			return window
		}
		// Keeping the BestOf lowest is removing the rest from the high end.
		return removeExtremes(window, len(window)-s.BestOf, true)

	default:
		return scores
	}
}

// dropScores removes the configured number of highest then lowest values. A drop
// that would leave zero scores is skipped entirely.
func dropScores(scores []sharedtypes.Score, dropHighest, dropLowest int) []sharedtypes.Score {
	out := scores
	if dropHighest > 0 && len(out) > dropHighest {
		out = removeExtremes(out, dropHighest, true)
	}
	if dropLowest > 0 && len(out) > dropLowest {
		out = removeExtremes(out, dropLowest, false)
	}
	return out
}

// removeExtremes removes count values from the high (or low) end by value while
// preserving the chronological order of the survivors. Ties break on position,
// earliest first.
func removeExtremes(scores []sharedtypes.Score, count int, highest bool) []sharedtypes.Score {
	if count <= 0 {
		return scores
	}
	if count >= len(scores) {
		return nil
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[a], scores[b])
	})

	dropped := make(map[int]bool, count)
	if highest {
		for _, i := range order[len(order)-count:] {
			dropped[i] = true
		}
	} else {
		for _, i := range order[:count] {
			dropped[i] = true
		}
	}

	out := make([]sharedtypes.Score, 0, len(scores)-count)
	for i, v := range scores {
		if !dropped[i] {
			out = append(out, v)
		}
	}
	return out
}

// average computes the simple or exponentially weighted mean of the surviving
// scores. Weighting needs at least two scores; the most recent score carries
// WeightRecent and each step into the past decays by WeightDecay.
func average(scores []sharedtypes.Score, s Settings) float64 {
	if len(scores) == 0 {
		return 0
	}
	if !s.UseWeighting || len(scores) < 2 {
		return mean(scores)
	}

	var weighted, total float64
	last := len(scores) - 1
	for i, v := range scores {
		w := s.WeightRecent * math.Pow(s.WeightDecay, float64(last-i))
		weighted += float64(v) * w
		total += w
	}
	if total == 0 {
		return mean(scores)
	}
	return weighted / total
}

func mean(scores []sharedtypes.Score) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += float64(v)
	}
	return sum / float64(len(scores))
}

// trendAdjustment returns the amount subtracted from the raw handicap for an
// improving player. It deliberately looks at the full history rather than the
// selected subset: the history splits at the floor midpoint, and a positive
// older-mean minus newer-mean means scores are coming down.
func trendAdjustment(scores []sharedtypes.Score, s Settings) float64 {
	if !s.UseTrend || len(scores) < 3 {
		return 0
	}
	mid := len(scores) / 2
	trend := mean(scores[:mid]) - mean(scores[mid:])
	return trend * s.TrendWeight
}

// applyRounding converts a raw handicap to an integer per the league's rounding
// mode. Half rounds away from zero.
func applyRounding(v float64, mode RoundingMode) int {
	switch mode {
	case RoundCeil:
		return int(math.Ceil(v))
	case RoundHalf:
		return int(math.Round(v))
	default:
		return int(math.Floor(v))
	}
}

// clampCaps applies the optional min/max handicap bounds.
func clampCaps(h int, s Settings) int {
	if s.MinHandicap != nil && h < *s.MinHandicap {
		h = *s.MinHandicap
	}
	if s.MaxHandicap != nil && h > *s.MaxHandicap {
		h = *s.MaxHandicap
	}
	return h
}
