package tactics

import (
	"math"

	"github.com/rs/zerolog/log"

	"tactics_ai/internal/ability"
	"tactics_ai/internal/grid"
	"tactics_ai/internal/util"
)

// Per-mark weights for the angle-based search.
const (
	backMultiplier  = 90
	sideMultiplier  = 75
	frontMultiplier = 50
)

func (o *AttackOption) resolveBestMoveTile(caster *grid.Unit, ab *ability.Ability) {
	o.bestMoveTile = nil
	o.bestAngleBasedScore = 0
	if len(o.moveTargets) == 0 {
		return
	}

	if !ab.IsAngleBased() {
		o.bestMoveTile = o.pick(o.moveTargets)
		return
	}

	best, score := o.angleBasedSearch(caster)
	best = o.filterBestMoves(best)
	o.bestMoveTile = o.pick(best)
	o.bestAngleBasedScore = score

	if ev := log.Debug(); ev.Enabled() {
		ev.Str("caster", caster.ID).
			Str("target", o.target.String()).
			Stringer("dir", o.direction).
			Int("ties", len(best)).
			Int("score", score).
			Str("tile", o.bestMoveTile.String()).
			Msg("angle search")
	}
	if o.emit != nil {
		o.emit(Event{Type: "AngleSearch", Payload: map[string]any{
			"caster": caster.ID,
			"target": o.target.String(),
			"tile":   o.bestMoveTile.String(),
			"score":  score,
			"ties":   len(best),
		}})
	}
}

// angleBasedSearch weighs every launch tile by the facing the caster would
// have on each mark, and returns the tiles sharing the top score. The caster
// is moved as a Placement copy; the live unit and its tiles are not touched.
func (o *AttackOption) angleBasedSearch(caster *grid.Unit) ([]*grid.Tile, int) {
	bestScore := math.MinInt
	var best []*grid.Tile
	for _, t := range o.moveTargets {
		sim := grid.Placement{Tile: t, Dir: o.direction}
		score := o.angleBasedScore(caster, sim)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, t)
		}
	}
	return best, bestScore
}

func (o *AttackOption) angleBasedScore(caster *grid.Unit, sim grid.Placement) int {
	score := 0
	for _, m := range o.marks {
		value := -1
		if m.IsMatch {
			value = 1
		}
		score += value * multiplierForAngle(caster, sim, m.Tile)
	}
	return score
}

func multiplierForAngle(caster *grid.Unit, sim grid.Placement, tile *grid.Tile) int {
	defender := occupantDuring(caster, sim, tile)
	if defender == nil {
		return 0
	}
	dp := defender.Placement()
	if defender == caster {
		dp = sim
	}
	switch sim.Facing(dp) {
	case grid.Back:
		return backMultiplier
	case grid.Side:
		return sideMultiplier
	default:
		return frontMultiplier
	}
}

// occupantDuring is tile's occupant as it would be with caster moved to sim:
// the caster's real tile reads empty and sim's tile holds the caster.
func occupantDuring(caster *grid.Unit, sim grid.Placement, tile *grid.Tile) *grid.Unit {
	if tile == nil {
		return nil
	}
	if tile == sim.Tile {
		return caster
	}
	occ := tile.Occupant()
	if occ == caster {
		return nil
	}
	return occ
}

// filterBestMoves prefers tied tiles that put the caster inside its own
// area, but only for abilities meant to affect the caster. It never returns
// an empty slice for a non-empty input.
func (o *AttackOption) filterBestMoves(tiles []*grid.Tile) []*grid.Tile {
	if !o.isCasterMatch {
		return tiles
	}
	var inArea []*grid.Tile
	for _, t := range tiles {
		if o.InArea(t) {
			inArea = append(inArea, t)
		}
	}
	if len(inArea) == 0 {
		return tiles
	}
	return inArea
}

func (o *AttackOption) pick(tiles []*grid.Tile) *grid.Tile {
	if len(tiles) == 0 {
		panic("tactics: pick from empty tile set")
	}
	return tiles[util.Intn(o.rng, len(tiles))]
}
