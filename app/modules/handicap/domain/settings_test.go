package handicapdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOverridesApply(t *testing.T) {
	t.Run("nil fields keep base values", func(t *testing.T) {
		base := DefaultSettings()
		got := Overrides{}.Apply(base)
		if diff := cmp.Diff(base, got); diff != "" {
			t.Fatalf("empty overrides changed settings (-base +got):\n%s", diff)
		}
	})

	t.Run("set fields replace base values", func(t *testing.T) {
		o := Overrides{
			Multiplier:  floatPtr(0.96),
			MaxHandicap: intPtr(20),
			Selection:   selectionPtr(SelectLastN),
			ScoreCount:  intPtr(5),
		}
		got := o.Apply(DefaultSettings())

		if got.Multiplier != 0.96 {
			t.Fatalf("multiplier not applied: %v", got.Multiplier)
		}
		if got.MaxHandicap == nil || *got.MaxHandicap != 20 {
			t.Fatalf("max handicap not applied: %v", got.MaxHandicap)
		}
		if got.Selection != SelectLastN || got.ScoreCount != 5 {
			t.Fatalf("selection not applied: %v %d", got.Selection, got.ScoreCount)
		}
		// Untouched fields stay at defaults.
		if got.BaseScore != 35 || got.Rounding != RoundFloor {
			t.Fatalf("unrelated fields changed: %+v", got)
		}
	})

	t.Run("base is not mutated", func(t *testing.T) {
		base := DefaultSettings()
		Overrides{MaxHandicap: intPtr(20), Multiplier: floatPtr(2)}.Apply(base)
		if base.MaxHandicap != nil || base.Multiplier != 0.9 {
			t.Fatalf("base settings mutated: %+v", base)
		}
	})

	t.Run("pointer fields are copied, not shared", func(t *testing.T) {
		limit := 18
		o := Overrides{MaxHandicap: &limit}
		got := o.Apply(DefaultSettings())
		limit = 99
		if *got.MaxHandicap != 18 {
			t.Fatalf("applied settings share the override's pointer")
		}
	})
}

func TestSettingsForPreset(t *testing.T) {
	t.Run("simple matches the defaults", func(t *testing.T) {
		if diff := cmp.Diff(DefaultSettings(), SettingsForPreset(PresetSimple)); diff != "" {
			t.Fatalf("simple preset diverges from defaults:\n%s", diff)
		}
	})

	t.Run("usga_style", func(t *testing.T) {
		got := SettingsForPreset(PresetUSGAStyle)
		if got.Selection != SelectBestOfLast || got.LastOf != 20 || got.BestOf != 8 {
			t.Fatalf("unexpected selection: %+v", got)
		}
		if got.Percentage != 96 || got.Rounding != RoundHalf {
			t.Fatalf("unexpected application rules: %+v", got)
		}
		// Fields the preset does not name keep their defaults.
		if got.BaseScore != 35 || got.Multiplier != 0.9 {
			t.Fatalf("preset leaked into base formula: %+v", got)
		}
	})

	t.Run("strict requires approval", func(t *testing.T) {
		got := SettingsForPreset(PresetStrict)
		if !got.RequireApproval {
			t.Fatalf("strict preset should require approval")
		}
		if got.MaxHandicap == nil || *got.MaxHandicap != 18 {
			t.Fatalf("strict preset max handicap: %v", got.MaxHandicap)
		}
	})

	t.Run("presets merge onto defaults, not onto each other", func(t *testing.T) {
		// Resolving forgiving after competitive must not inherit competitive's
		// weighting knobs.
		_ = SettingsForPreset(PresetCompetitive)
		got := SettingsForPreset(PresetForgiving)
		if got.UseWeighting || got.UseTrend {
			t.Fatalf("forgiving preset inherited another preset's fields: %+v", got)
		}
	})

	t.Run("unknown preset falls back to defaults", func(t *testing.T) {
		if diff := cmp.Diff(DefaultSettings(), SettingsForPreset(Preset("bogus"))); diff != "" {
			t.Fatalf("unknown preset diverges from defaults:\n%s", diff)
		}
	})
}
