package handicapdomain

// Preset names a packaged settings profile.
type Preset string

const (
	PresetSimple      Preset = "simple"
	PresetUSGAStyle   Preset = "usga_style"
	PresetForgiving   Preset = "forgiving"
	PresetCompetitive Preset = "competitive"
	PresetStrict      Preset = "strict"
	PresetCustom      Preset = "custom"
)

// presetOverrides maps each preset to the fields it changes from the defaults.
// A preset always merges onto the full default set, never onto whatever settings
// happened to be active before.
var presetOverrides = map[Preset]Overrides{
	// The default formula, unchanged.
	PresetSimple: {},

	// Best 8 of the last 20 with the familiar 96% allowance.
	PresetUSGAStyle: {
		Selection:  selectionPtr(SelectBestOfLast),
		LastOf:     intPtr(20),
		BestOf:     intPtr(8),
		Rounding:   roundingPtr(RoundHalf),
		Percentage: floatPtr(96),
	},

	// Soften blowup rounds: cap exceptional scores, drop the worst one, and
	// keep new players dampened for a month.
	PresetForgiving: {
		CapExceptional: boolPtr(true),
		ExceptionalCap: floatPtr(55),
		DropHighest:    intPtr(1),
		MaxHandicap:    intPtr(36),
		ProvWeeks:      intPtr(4),
		Rounding:       roundingPtr(RoundHalf),
	},

	// Reward current form: recent scores weigh more, improving players get
	// pulled down faster, and only 90% of the computed number is granted.
	PresetCompetitive: {
		Selection:    selectionPtr(SelectLastN),
		ScoreCount:   intPtr(10),
		UseWeighting: boolPtr(true),
		WeightRecent: floatPtr(1.0),
		WeightDecay:  floatPtr(0.85),
		UseTrend:     boolPtr(true),
		TrendWeight:  floatPtr(0.5),
		Percentage:   floatPtr(90),
		MaxStrokes:   intPtr(12),
	},

	// Short memory, low ceiling, conservative rounding, admin sign-off.
	PresetStrict: {
		Selection:       selectionPtr(SelectLastN),
		ScoreCount:      intPtr(5),
		Percentage:      floatPtr(80),
		MaxHandicap:     intPtr(18),
		MinHandicap:     intPtr(0),
		Rounding:        roundingPtr(RoundFloor),
		RequireApproval: boolPtr(true),
	},

	// Starting point for hand-tuned leagues; identical to the defaults until
	// the admin edits individual fields.
	PresetCustom: {},
}

// SettingsForPreset returns the preset's overrides applied onto DefaultSettings.
// Unknown preset names fall back to the defaults.
func SettingsForPreset(p Preset) Settings {
	o, ok := presetOverrides[p]
	if !ok {
		return DefaultSettings()
	}
	return o.Apply(DefaultSettings())
}

// Presets lists the available preset names in display order.
func Presets() []Preset {
	return []Preset{
		PresetSimple,
		PresetUSGAStyle,
		PresetForgiving,
		PresetCompetitive,
		PresetStrict,
		PresetCustom,
	}
}

func selectionPtr(s ScoreSelection) *ScoreSelection {
	return &s
}

func roundingPtr(r RoundingMode) *RoundingMode {
	return &r
}
