package grid

import (
	"fmt"
	"strings"
)

type Alliance int

const (
	AllianceNone Alliance = iota
	AllianceHero
	AllianceEnemy
	AllianceNeutral
)

func (a Alliance) String() string {
	switch a {
	case AllianceHero:
		return "hero"
	case AllianceEnemy:
		return "enemy"
	case AllianceNeutral:
		return "neutral"
	default:
		return "none"
	}
}

func ParseAlliance(s string) (Alliance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AllianceNone, nil
	case "hero":
		return AllianceHero, nil
	case "enemy":
		return AllianceEnemy, nil
	case "neutral":
		return AllianceNeutral, nil
	}
	return AllianceNone, fmt.Errorf("grid: unknown alliance %q", s)
}

// Unit is a combat actor holding exactly one tile at a time.
type Unit struct {
	ID       string
	Alliance Alliance
	Dir      Direction
	HP       int
	tile     *Tile
}

func NewUnit(id string, alliance Alliance, hp int) *Unit {
	return &Unit{ID: id, Alliance: alliance, HP: hp}
}

func (u *Unit) Tile() *Tile { return u.tile }

// Place moves the unit to t, keeping both tiles' occupant references in step.
// A nil t takes the unit off the board.
func (u *Unit) Place(t *Tile) {
	if u.tile != nil && u.tile.occupant == u {
		u.tile.occupant = nil
	}
	u.tile = t
	if t != nil {
		t.occupant = u
	}
}

func (u *Unit) Placement() Placement { return Placement{Tile: u.tile, Dir: u.Dir} }

// GetFacing classifies the angle of an attack by u on defender.
func (u *Unit) GetFacing(defender *Unit) Facing {
	return u.Placement().Facing(defender.Placement())
}

func (u *Unit) Defeated() bool { return u.HP <= 0 }
