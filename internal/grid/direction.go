package grid

import (
	"fmt"
	"strings"
)

type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

// Offset is the one-tile step in this direction; north is +Y.
func (d Direction) Offset() Point {
	switch d {
	case East:
		return Point{X: 1}
	case South:
		return Point{Y: -1}
	case West:
		return Point{X: -1}
	default:
		return Point{Y: 1}
	}
}

func (d Direction) Normal() Vec2 { return d.Offset().Vec() }

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if v == name || (len(v) == 1 && v[0] == name[0]) {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("grid: unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
