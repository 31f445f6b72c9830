package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBoardSize = 8
	DefaultHP        = 10
	DefaultVictory   = "defeat_all_enemies"
)

var ErrInvalidScenario = errors.New("config: invalid scenario")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func LoadAbilities(path string) (*AbilitiesConfig, error) {
	var ac AbilitiesConfig
	if err := loadYAML(path, &ac); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for i, a := range ac.Abilities {
		if a.ID == "" {
			return nil, fmt.Errorf("config: ability #%d has no id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("config: duplicate ability %q", a.ID)
		}
		seen[a.ID] = true
	}
	return &ac, nil
}

func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, err
	}
	applyScenarioDefaults(&sc)
	if err := validateScenario(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadAll reads dir/abilities.yaml and dir/scenarios/<scenario>.yaml.
func LoadAll(dir, scenario string) (*AbilitiesConfig, *Scenario, error) {
	ac, err := LoadAbilities(filepath.Join(dir, "abilities.yaml"))
	if err != nil {
		return nil, nil, err
	}
	sc, err := LoadScenario(filepath.Join(dir, "scenarios", scenario+".yaml"))
	if err != nil {
		return nil, nil, err
	}
	if sc.ID == "" {
		sc.ID = scenario
	}
	return ac, sc, nil
}

func applyScenarioDefaults(sc *Scenario) {
	if sc.Board.Width == 0 {
		sc.Board.Width = DefaultBoardSize
	}
	if sc.Board.Height == 0 {
		sc.Board.Height = DefaultBoardSize
	}
	if sc.Victory == "" {
		sc.Victory = DefaultVictory
	}
	for i := range sc.Units {
		if sc.Units[i].HP == 0 {
			sc.Units[i].HP = DefaultHP
		}
	}
	for i := range sc.Options {
		if sc.Options[i].ID == "" {
			sc.Options[i].ID = fmt.Sprintf("option-%d", i)
		}
	}
}

func validateScenario(sc *Scenario) error {
	if sc.Board.Width < 0 || sc.Board.Height < 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidScenario, sc.Board.Width, sc.Board.Height)
	}
	units := map[string]bool{}
	for i, u := range sc.Units {
		if u.ID == "" {
			return fmt.Errorf("%w: unit #%d has no id", ErrInvalidScenario, i)
		}
		if units[u.ID] {
			return fmt.Errorf("%w: duplicate unit %q", ErrInvalidScenario, u.ID)
		}
		units[u.ID] = true
	}
	for _, o := range sc.Options {
		if o.Caster == "" || o.Ability == "" {
			return fmt.Errorf("%w: option %q needs a caster and an ability", ErrInvalidScenario, o.ID)
		}
	}
	return nil
}
