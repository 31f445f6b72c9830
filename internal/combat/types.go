package combat

import (
	"math/rand"

	"tactics_ai/internal/ability"
	"tactics_ai/internal/grid"
	"tactics_ai/internal/tactics"
	"tactics_ai/internal/victory"
)

type Event = tactics.Event

type Env struct {
	Time float64
	Rng  *rand.Rand
}

// Battle is a self-contained snapshot: its board, units and options are not
// shared with any other Battle, so separate Battles may be scored in parallel.
type Battle struct {
	ID      string
	Board   *grid.Board
	Units   []*grid.Unit
	Victory victory.Condition
	Options []*Plan

	byID map[string]*grid.Unit
}

// Plan is one attack option together with who would use it and how.
type Plan struct {
	ID      string
	Caster  *grid.Unit
	Ability *ability.Ability
	Option  *tactics.AttackOption
}

func (b *Battle) Unit(id string) *grid.Unit { return b.byID[id] }
