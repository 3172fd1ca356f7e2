// Package handicapdomain implements the handicap calculation engine: a pure,
// deterministic pipeline that turns a chronological score history plus a league's
// settings into a handicap, an applied handicap, net scores, and stroke allocations.
// Nothing in this package performs I/O or retains state between calls.
package handicapdomain

import sharedtypes "github.com/MasterObie1/golf-sub003/app/shared/types"

// RoundingMode selects how fractional handicaps become integers.
type RoundingMode string

const (
	RoundFloor RoundingMode = "floor"
	RoundHalf  RoundingMode = "round"
	RoundCeil  RoundingMode = "ceil"
)

// ScoreSelection selects which scores from the history feed the average.
type ScoreSelection string

const (
	SelectAll        ScoreSelection = "all"
	SelectLastN      ScoreSelection = "last_n"
	SelectBestOfLast ScoreSelection = "best_of_last"
)

// AllowanceType governs how much of each competitor's handicap is granted as
// strokes given in a head-to-head matchup.
type AllowanceType string

const (
	AllowanceFull       AllowanceType = "full"
	AllowancePercentage AllowanceType = "percentage"
	AllowanceDifference AllowanceType = "difference"
)

// Settings is one league's fully populated handicap configuration. Every field has
// a concrete default (see DefaultSettings); the engine is always handed a complete
// record, never a partial one. Pointer fields are optional knobs where nil means
// "not in effect".
type Settings struct {
	// Basic formula.
	BaseScore       float64                   `yaml:"base_score"`
	Multiplier      float64                   `yaml:"multiplier"`
	Rounding        RoundingMode              `yaml:"rounding"`
	DefaultHandicap sharedtypes.HandicapValue `yaml:"default_handicap"`
	MaxHandicap     *int                      `yaml:"max_handicap"`
	MinHandicap     *int                      `yaml:"min_handicap"`

	// Score selection.
	Selection   ScoreSelection `yaml:"score_selection"`
	ScoreCount  int            `yaml:"score_count"`
	BestOf      int            `yaml:"best_of"`
	LastOf      int            `yaml:"last_of"`
	DropHighest int            `yaml:"drop_highest"`
	DropLowest  int            `yaml:"drop_lowest"`

	// Recency weighting.
	UseWeighting bool    `yaml:"use_weighting"`
	WeightRecent float64 `yaml:"weight_recent"`
	WeightDecay  float64 `yaml:"weight_decay"`

	// Exceptional-score handling.
	CapExceptional bool     `yaml:"cap_exceptional"`
	ExceptionalCap *float64 `yaml:"exceptional_cap"`

	// Application rules.
	Percentage    float64       `yaml:"percentage"`
	MaxStrokes    *int          `yaml:"max_strokes"`
	AllowanceType AllowanceType `yaml:"allowance_type"`

	// Time-based rules.
	ProvWeeks      int     `yaml:"prov_weeks"`
	ProvMultiplier float64 `yaml:"prov_multiplier"`
	FreezeWeek     *int    `yaml:"freeze_week"`
	UseTrend       bool    `yaml:"use_trend"`
	TrendWeight    float64 `yaml:"trend_weight"`

	// Administrative. Not consumed by the engine itself; callers gate persistence
	// of recalculated handicaps on it.
	RequireApproval bool `yaml:"require_approval"`
}

// DefaultSettings returns the baseline configuration. With these values the engine
// reproduces the simplest possible formula: floor((average of all scores - 35) * 0.9).
func DefaultSettings() Settings {
	return Settings{
		BaseScore:       35,
		Multiplier:      0.9,
		Rounding:        RoundFloor,
		DefaultHandicap: 0,
		Selection:       SelectAll,
		WeightRecent:    1.0,
		WeightDecay:     0.9,
		Percentage:      100,
		AllowanceType:   AllowanceFull,
		ProvMultiplier:  0.5,
		TrendWeight:     0.5,
	}
}

// Overrides is a partial Settings: every field is a pointer, nil meaning "keep the
// base value". Partial league configurations unmarshal into this and merge onto
// DefaultSettings, so presets and stored overrides compose predictably.
type Overrides struct {
	BaseScore       *float64                   `yaml:"base_score"`
	Multiplier      *float64                   `yaml:"multiplier"`
	Rounding        *RoundingMode              `yaml:"rounding"`
	DefaultHandicap *sharedtypes.HandicapValue `yaml:"default_handicap"`
	MaxHandicap     *int                       `yaml:"max_handicap"`
	MinHandicap     *int                       `yaml:"min_handicap"`

	Selection   *ScoreSelection `yaml:"score_selection"`
	ScoreCount  *int            `yaml:"score_count"`
	BestOf      *int            `yaml:"best_of"`
	LastOf      *int            `yaml:"last_of"`
	DropHighest *int            `yaml:"drop_highest"`
	DropLowest  *int            `yaml:"drop_lowest"`

	UseWeighting *bool    `yaml:"use_weighting"`
	WeightRecent *float64 `yaml:"weight_recent"`
	WeightDecay  *float64 `yaml:"weight_decay"`

	CapExceptional *bool    `yaml:"cap_exceptional"`
	ExceptionalCap *float64 `yaml:"exceptional_cap"`

	Percentage    *float64       `yaml:"percentage"`
	MaxStrokes    *int           `yaml:"max_strokes"`
	AllowanceType *AllowanceType `yaml:"allowance_type"`

	ProvWeeks      *int     `yaml:"prov_weeks"`
	ProvMultiplier *float64 `yaml:"prov_multiplier"`
	FreezeWeek     *int     `yaml:"freeze_week"`
	UseTrend       *bool    `yaml:"use_trend"`
	TrendWeight    *float64 `yaml:"trend_weight"`

	RequireApproval *bool `yaml:"require_approval"`
}

// Apply merges the overrides onto base and returns the result. base is copied;
// neither input is mutated.
func (o Overrides) Apply(base Settings) Settings {
	out := base

	if o.BaseScore != nil {
		out.BaseScore = *o.BaseScore
	}
	if o.Multiplier != nil {
		out.Multiplier = *o.Multiplier
	}
	if o.Rounding != nil {
		out.Rounding = *o.Rounding
	}
	if o.DefaultHandicap != nil {
		out.DefaultHandicap = *o.DefaultHandicap
	}
	if o.MaxHandicap != nil {
		out.MaxHandicap = intPtr(*o.MaxHandicap)
	}
	if o.MinHandicap != nil {
		out.MinHandicap = intPtr(*o.MinHandicap)
	}
	if o.Selection != nil {
		out.Selection = *o.Selection
	}
	if o.ScoreCount != nil {
		out.ScoreCount = *o.ScoreCount
	}
	if o.BestOf != nil {
		out.BestOf = *o.BestOf
	}
	if o.LastOf != nil {
		out.LastOf = *o.LastOf
	}
	if o.DropHighest != nil {
		out.DropHighest = *o.DropHighest
	}
	if o.DropLowest != nil {
		out.DropLowest = *o.DropLowest
	}
	if o.UseWeighting != nil {
		out.UseWeighting = *o.UseWeighting
	}
	if o.WeightRecent != nil {
		out.WeightRecent = *o.WeightRecent
	}
	if o.WeightDecay != nil {
		out.WeightDecay = *o.WeightDecay
	}
	if o.CapExceptional != nil {
		out.CapExceptional = *o.CapExceptional
	}
	if o.ExceptionalCap != nil {
		out.ExceptionalCap = floatPtr(*o.ExceptionalCap)
	}
	if o.Percentage != nil {
		out.Percentage = *o.Percentage
	}
	if o.MaxStrokes != nil {
		out.MaxStrokes = intPtr(*o.MaxStrokes)
	}
	if o.AllowanceType != nil {
		out.AllowanceType = *o.AllowanceType
	}
	if o.ProvWeeks != nil {
		out.ProvWeeks = *o.ProvWeeks
	}
	if o.ProvMultiplier != nil {
		out.ProvMultiplier = *o.ProvMultiplier
	}
	if o.FreezeWeek != nil {
		out.FreezeWeek = intPtr(*o.FreezeWeek)
	}
	if o.UseTrend != nil {
		out.UseTrend = *o.UseTrend
	}
	if o.TrendWeight != nil {
		out.TrendWeight = *o.TrendWeight
	}
	if o.RequireApproval != nil {
		out.RequireApproval = *o.RequireApproval
	}

	return out
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
