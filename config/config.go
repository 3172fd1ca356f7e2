// Package config loads the engine configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	handicapdomain "github.com/MasterObie1/golf-sub003/app/modules/handicap/domain"
)

// Config struct to hold the configuration settings
type Config struct {
	Engine        EngineConfig        `yaml:"engine"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// EngineConfig holds engine defaults applied to leagues without stored settings.
type EngineConfig struct {
	// DefaultPreset names the handicap preset used when a league has none.
	DefaultPreset string `yaml:"default_preset"`
	// SettingsFile optionally points at a YAML file of field-level overrides
	// merged onto the default preset.
	SettingsFile string `yaml:"settings_file"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file. A missing file is not an
// error; the configuration then comes from environment variables alone.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("HANDICAP_PRESET"); v != "" {
		cfg.Engine.DefaultPreset = v
	}
	if v := os.Getenv("HANDICAP_SETTINGS_FILE"); v != "" {
		cfg.Engine.SettingsFile = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	if cfg.Engine.DefaultPreset == "" {
		cfg.Engine.DefaultPreset = string(handicapdomain.PresetSimple)
	}

	return &cfg, nil
}

// LoadLeagueOverrides reads a partial handicap settings file for one league.
// Absent fields stay at their preset values; the caller merges the result via
// Overrides.Apply.
func LoadLeagueOverrides(filename string) (handicapdomain.Overrides, error) {
	var overrides handicapdomain.Overrides

	data, err := os.ReadFile(filename)
	if err != nil {
		return overrides, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return overrides, fmt.Errorf("failed to unmarshal settings file: %w", err)
	}

	return overrides, nil
}
