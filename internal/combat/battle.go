package combat

import (
	"errors"
	"fmt"

	"tactics_ai/internal/ability"
	"tactics_ai/internal/config"
	"tactics_ai/internal/grid"
	"tactics_ai/internal/tactics"
	"tactics_ai/internal/util"
	"tactics_ai/internal/victory"
)

var (
	ErrUnknownUnit    = errors.New("combat: unknown unit")
	ErrUnknownAbility = errors.New("combat: unknown ability")
	ErrOffBoard       = errors.New("combat: tile off board")
	ErrTileTaken      = errors.New("combat: tile already occupied")
)

// Build lays out a scenario on a fresh board. Every option draws its random
// picks from rng.
func Build(sc *config.Scenario, book *ability.Book, rng util.Source) (*Battle, error) {
	cond, err := victory.ForName(sc.Victory)
	if err != nil {
		return nil, err
	}
	b := &Battle{
		ID:      sc.ID,
		Board:   grid.NewBoard(sc.Board.Width, sc.Board.Height),
		Victory: cond,
		byID:    map[string]*grid.Unit{},
	}

	for _, ud := range sc.Units {
		u, err := b.placeUnit(ud)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", ud.ID, err)
		}
		b.Units = append(b.Units, u)
		b.byID[u.ID] = u
	}

	for _, od := range sc.Options {
		p, err := b.buildPlan(od, book, rng)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", od.ID, err)
		}
		b.Options = append(b.Options, p)
	}
	return b, nil
}

func (b *Battle) placeUnit(ud config.UnitDef) (*grid.Unit, error) {
	alliance, err := grid.ParseAlliance(ud.Alliance)
	if err != nil {
		return nil, err
	}
	u := grid.NewUnit(ud.ID, alliance, ud.HP)
	if ud.Dir != "" {
		if u.Dir, err = grid.ParseDirection(ud.Dir); err != nil {
			return nil, err
		}
	}
	t, err := b.tile(config.PointDef{X: ud.X, Y: ud.Y})
	if err != nil {
		return nil, err
	}
	if t.Occupant() != nil {
		return nil, fmt.Errorf("%w: %s by %s", ErrTileTaken, t, t.Occupant().ID)
	}
	u.Place(t)
	return u, nil
}

func (b *Battle) buildPlan(od config.OptionDef, book *ability.Book, rng util.Source) (*Plan, error) {
	caster := b.byID[od.Caster]
	if caster == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, od.Caster)
	}
	ab, ok := book.Get(od.Ability)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAbility, od.Ability)
	}
	dir := grid.North
	if od.Direction != "" {
		var err error
		if dir, err = grid.ParseDirection(od.Direction); err != nil {
			return nil, err
		}
	}
	target, err := b.tile(od.Target)
	if err != nil {
		return nil, err
	}
	area, err := b.tiles(od.Area)
	if err != nil {
		return nil, err
	}

	opt := tactics.NewAttackOption(target, dir, area, od.CasterMatch, rng)
	for _, m := range od.Marks {
		t, err := b.tile(m.At)
		if err != nil {
			return nil, err
		}
		opt.AddMark(t, m.Match)
	}
	moves, err := b.tiles(od.MoveTargets)
	if err != nil {
		return nil, err
	}
	for _, t := range moves {
		opt.AddMoveTarget(t)
	}
	return &Plan{ID: od.ID, Caster: caster, Ability: ab, Option: opt}, nil
}

func (b *Battle) tile(p config.PointDef) (*grid.Tile, error) {
	t := b.Board.Tile(grid.Point{X: p.X, Y: p.Y})
	if t == nil {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOffBoard, p.X, p.Y, b.Board.Width, b.Board.Height)
	}
	return t, nil
}

func (b *Battle) tiles(ps []config.PointDef) ([]*grid.Tile, error) {
	out := make([]*grid.Tile, 0, len(ps))
	for _, p := range ps {
		t, err := b.tile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
