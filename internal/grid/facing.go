package grid

type Facing int

const (
	Front Facing = iota
	Side
	Back
)

func (f Facing) String() string {
	switch f {
	case Side:
		return "side"
	case Back:
		return "back"
	default:
		return "front"
	}
}

// facingThreshold splits the approach/defender dot product into the three arcs.
const facingThreshold = 0.45

// Placement is a unit's position and orientation as a plain value, so
// what-if evaluation can move a copy instead of the live unit.
type Placement struct {
	Tile *Tile
	Dir  Direction
}

// Facing classifies an attack from p against a defender placed at d.
// Approaching along the defender's own facing direction hits its back.
func (p Placement) Facing(d Placement) Facing {
	if p.Tile == nil || d.Tile == nil {
		return Front
	}
	approach := d.Tile.Pos.Vec().Sub(p.Tile.Pos.Vec()).Norm()
	dot := approach.Dot(d.Dir.Normal())
	switch {
	case dot >= facingThreshold:
		return Back
	case dot <= -facingThreshold:
		return Front
	default:
		return Side
	}
}
