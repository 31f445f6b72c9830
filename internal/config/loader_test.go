package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const abilitiesYAML = `
abilities:
  - id: attack
    hit_rates:
      - kind: angle
        angle_based: true
  - id: cure
    name: Cure
    hit_rates:
      - kind: full
`

const scenarioYAML = `
note: two units
board:
  width: 4
units:
  - id: knight
    alliance: hero
    x: 0
    y: 0
    dir: north
  - id: goblin
    alliance: enemy
    x: 1
    y: 1
    hp: 3
options:
  - caster: knight
    ability: attack
    target: {x: 1, y: 1}
    direction: north
    area: [{x: 1, y: 1}]
    marks:
      - at: {x: 1, y: 1}
        match: true
    move_targets: [{x: 1, y: 0}, {x: 0, y: 1}]
`

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "abilities.yaml"), abilitiesYAML)
	writeFile(t, filepath.Join(dir, "scenarios", "duel.yaml"), scenarioYAML)

	ac, sc, err := LoadAll(dir, "duel")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(ac.Abilities) != 2 || !ac.Abilities[0].HitRates[0].AngleBased {
		t.Fatalf("abilities not parsed: %+v", ac.Abilities)
	}
	if sc.ID != "duel" {
		t.Errorf("scenario id should default to file name, got %q", sc.ID)
	}
	if sc.Board.Width != 4 || sc.Board.Height != DefaultBoardSize {
		t.Errorf("board = %+v, want width 4 and default height", sc.Board)
	}
	if sc.Victory != DefaultVictory {
		t.Errorf("victory = %q, want default", sc.Victory)
	}
	if sc.Units[0].HP != DefaultHP || sc.Units[1].HP != 3 {
		t.Errorf("hp defaults wrong: %d, %d", sc.Units[0].HP, sc.Units[1].HP)
	}
	opt := sc.Options[0]
	if opt.ID != "option-0" {
		t.Errorf("option id = %q, want option-0", opt.ID)
	}
	if len(opt.Marks) != 1 || !opt.Marks[0].Match || opt.Marks[0].At != (PointDef{X: 1, Y: 1}) {
		t.Errorf("marks not parsed: %+v", opt.Marks)
	}
	if len(opt.MoveTargets) != 2 {
		t.Errorf("move targets = %v", opt.MoveTargets)
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "abilities.yaml"), abilitiesYAML)
	if _, _, err := LoadAll(dir, "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadAbilities_Duplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abilities.yaml")
	writeFile(t, path, "abilities:\n  - id: a\n  - id: a\n")
	if _, err := LoadAbilities(path); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadScenario_Invalid(t *testing.T) {
	cases := map[string]string{
		"duplicate unit": "units:\n  - id: a\n  - id: a\n",
		"unnamed unit":   "units:\n  - x: 1\n",
		"no caster":      "options:\n  - ability: attack\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "s.yaml")
		writeFile(t, path, body)
		if _, err := LoadScenario(path); !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("%s: expected ErrInvalidScenario, got %v", name, err)
		}
	}
}

func TestLoadScenario_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	writeFile(t, path, "units: [")
	if _, err := LoadScenario(path); err == nil {
		t.Fatal("expected parse error")
	}
}
