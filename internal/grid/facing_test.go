package grid

import "testing"

func placeAt(b *Board, id string, x, y int, dir Direction) *Unit {
	u := NewUnit(id, AllianceEnemy, 10)
	u.Dir = dir
	u.Place(b.Tile(Point{X: x, Y: y}))
	return u
}

func TestFacing_Arcs(t *testing.T) {
	b := NewBoard(5, 5)
	defender := placeAt(b, "def", 2, 2, North)

	cases := []struct {
		name string
		at   Point
		want Facing
	}{
		{"behind", Point{X: 2, Y: 1}, Back},
		{"far behind", Point{X: 2, Y: 0}, Back},
		{"ahead", Point{X: 2, Y: 3}, Front},
		{"left flank", Point{X: 1, Y: 2}, Side},
		{"right flank", Point{X: 3, Y: 2}, Side},
		{"rear diagonal", Point{X: 1, Y: 1}, Back},
		{"front diagonal", Point{X: 3, Y: 3}, Front},
	}
	for _, tc := range cases {
		attacker := Placement{Tile: b.Tile(tc.at), Dir: South}
		if got := attacker.Facing(defender.Placement()); got != tc.want {
			t.Errorf("%s: facing = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestFacing_FollowsDefenderDirection(t *testing.T) {
	b := NewBoard(5, 5)
	attacker := placeAt(b, "atk", 0, 2, East)
	defender := placeAt(b, "def", 1, 2, East)

	if got := attacker.GetFacing(defender); got != Back {
		t.Fatalf("attacking an east-facing unit from the west: got %s, want back", got)
	}
	defender.Dir = West
	if got := attacker.GetFacing(defender); got != Front {
		t.Fatalf("attacking a west-facing unit from the west: got %s, want front", got)
	}
}

func TestFacing_SameTileIsSide(t *testing.T) {
	b := NewBoard(3, 3)
	tile := b.Tile(Point{X: 1, Y: 1})
	p := Placement{Tile: tile, Dir: North}
	if got := p.Facing(p); got != Side {
		t.Fatalf("zero approach vector: got %s, want side", got)
	}
}

func TestFacing_MissingTileIsFront(t *testing.T) {
	b := NewBoard(3, 3)
	p := Placement{Tile: b.Tile(Point{X: 1, Y: 1})}
	if got := (Placement{}).Facing(p); got != Front {
		t.Fatalf("unplaced attacker: got %s, want front", got)
	}
}
