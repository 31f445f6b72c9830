// Package tactics scores candidate attack placements for the AI.
package tactics

import (
	"tactics_ai/internal/ability"
	"tactics_ai/internal/grid"
	"tactics_ai/internal/util"
)

// Mark is one tile an ability would hit. Match marks are hits the caster
// wants (enemies for an attack, allies for a heal).
type Mark struct {
	Tile    *grid.Tile
	IsMatch bool
}

// AttackOption collects everything known about applying an ability at one
// target from one approach direction, and scores it.
type AttackOption struct {
	target        *grid.Tile
	direction     grid.Direction
	area          []*grid.Tile
	areaSet       map[*grid.Tile]struct{}
	isCasterMatch bool

	marks       []Mark
	moveTargets []*grid.Tile
	moveSet     map[*grid.Tile]struct{}

	bestMoveTile        *grid.Tile
	bestAngleBasedScore int

	rng  util.Source
	emit func(Event)
}

// NewAttackOption creates an option for target approached from dir. area is
// every tile the ability would affect; casterMatch marks abilities meant to
// affect their own caster. rng drives the random picks; nil uses math/rand.
func NewAttackOption(target *grid.Tile, dir grid.Direction, area []*grid.Tile, casterMatch bool, rng util.Source) *AttackOption {
	o := &AttackOption{
		target:        target,
		direction:     dir,
		areaSet:       make(map[*grid.Tile]struct{}, len(area)),
		isCasterMatch: casterMatch,
		moveSet:       map[*grid.Tile]struct{}{},
		rng:           rng,
	}
	for _, t := range area {
		if _, dup := o.areaSet[t]; dup {
			continue
		}
		o.areaSet[t] = struct{}{}
		o.area = append(o.area, t)
	}
	return o
}

// WithTrace sets a sink for search events and returns o.
func (o *AttackOption) WithTrace(emit func(Event)) *AttackOption {
	o.emit = emit
	return o
}

func (o *AttackOption) Target() *grid.Tile        { return o.target }
func (o *AttackOption) Direction() grid.Direction { return o.direction }
func (o *AttackOption) IsCasterMatch() bool       { return o.isCasterMatch }
func (o *AttackOption) AreaTargets() []*grid.Tile { return append([]*grid.Tile(nil), o.area...) }
func (o *AttackOption) Marks() []Mark             { return append([]Mark(nil), o.marks...) }
func (o *AttackOption) MoveTargets() []*grid.Tile { return append([]*grid.Tile(nil), o.moveTargets...) }

func (o *AttackOption) InArea(t *grid.Tile) bool {
	_, ok := o.areaSet[t]
	return ok
}

// BestMoveTile is the launch tile chosen by the last GetScore call, or nil
// when the option had nowhere to launch from.
func (o *AttackOption) BestMoveTile() *grid.Tile { return o.bestMoveTile }

// BestAngleBasedScore is the weighted score of BestMoveTile. It is only set
// when the last GetScore call used an angle-based ability.
func (o *AttackOption) BestAngleBasedScore() int { return o.bestAngleBasedScore }

// AddMoveTarget offers t as a launch tile. Tiles inside the area are refused
// unless the ability is meant to affect the caster.
func (o *AttackOption) AddMoveTarget(t *grid.Tile) {
	if !o.isCasterMatch && o.InArea(t) {
		return
	}
	if _, dup := o.moveSet[t]; dup {
		return
	}
	o.moveSet[t] = struct{}{}
	o.moveTargets = append(o.moveTargets, t)
}

func (o *AttackOption) AddMark(t *grid.Tile, isMatch bool) {
	o.marks = append(o.marks, Mark{Tile: t, IsMatch: isMatch})
}

// GetScore picks the best launch tile for caster and returns how many
// desired targets the option hits minus the undesired ones. An option with no
// launch tile scores 0 and leaves BestMoveTile nil.
//
// The angle of attack only decides which launch tile is picked; it never
// scales the returned score.
func (o *AttackOption) GetScore(caster *grid.Unit, ab *ability.Ability) int {
	o.resolveBestMoveTile(caster, ab)
	if o.bestMoveTile == nil {
		return 0
	}

	score := 0
	for _, m := range o.marks {
		if m.IsMatch {
			score++
		} else {
			score--
		}
	}

	if o.isCasterMatch && o.InArea(o.bestMoveTile) {
		score++
	}
	return score
}
