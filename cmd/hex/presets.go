package main

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"hexmcts/mcts"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// preset is one named difficulty profile for the robot player. It is the
// only place file-based configuration is read in this repository: the
// search core itself (mcts.Config) never consults a file.
type preset struct {
	Name              string  `yaml:"name"`
	ExplorationFactor float64 `yaml:"exploration_factor"`
	DecisionTimeMS    int     `yaml:"decision_time_ms"`
	Parallelized      bool    `yaml:"parallelized"`
	Verbose           bool    `yaml:"verbose"`
}

func (p preset) toConfig() mcts.Config {
	return mcts.Config{
		ExplorationFactor: p.ExplorationFactor,
		MaxDecisionTime:   time.Duration(p.DecisionTimeMS) * time.Millisecond,
		Parallelized:      p.Parallelized,
		Verbose:           p.Verbose,
	}
}

func loadPresets() ([]preset, error) {
	var presets []preset
	if err := yaml.Unmarshal(defaultPresetsYAML, &presets); err != nil {
		return nil, fmt.Errorf("parsing embedded presets: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets defined")
	}
	return presets, nil
}
