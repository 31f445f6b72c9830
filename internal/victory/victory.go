// Package victory decides whether a battle is already over.
package victory

import (
	"fmt"

	"tactics_ai/internal/grid"
)

type Condition interface {
	// Victor returns the winning alliance, or grid.AllianceNone while the
	// battle is still undecided.
	Victor(units []*grid.Unit) grid.Alliance
}

// Base ends the battle in the enemy's favour once the hero party is wiped out.
type Base struct{}

func (Base) Victor(units []*grid.Unit) grid.Alliance {
	if PartyDefeated(units, grid.AllianceHero) {
		return grid.AllianceEnemy
	}
	return grid.AllianceNone
}

// DefeatAllEnemies is Base plus a hero win once every enemy is defeated.
type DefeatAllEnemies struct{ Base }

func (c DefeatAllEnemies) Victor(units []*grid.Unit) grid.Alliance {
	v := c.Base.Victor(units)
	if v == grid.AllianceNone && PartyDefeated(units, grid.AllianceEnemy) {
		return grid.AllianceHero
	}
	return v
}

// PartyDefeated reports whether every unit of alliance is defeated. A party
// with no units counts as defeated.
func PartyDefeated(units []*grid.Unit, alliance grid.Alliance) bool {
	for _, u := range units {
		if u.Alliance == alliance && !u.Defeated() {
			return false
		}
	}
	return true
}

func ForName(name string) (Condition, error) {
	switch name {
	case "", "defeat_all_enemies":
		return DefeatAllEnemies{}, nil
	case "base", "survive":
		return Base{}, nil
	}
	return nil, fmt.Errorf("victory: unknown condition %q", name)
}
