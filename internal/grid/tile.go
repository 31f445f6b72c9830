package grid

import "fmt"

// Tile is a board cell. Tiles are compared by pointer; the board owns them.
type Tile struct {
	Pos      Point
	occupant *Unit
}

// Occupant returns the unit standing on the tile, or nil.
func (t *Tile) Occupant() *Unit {
	if t == nil {
		return nil
	}
	return t.occupant
}

func (t *Tile) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%d,%d)", t.Pos.X, t.Pos.Y)
}

type Board struct {
	Width  int
	Height int
	tiles  map[Point]*Tile
}

func NewBoard(width, height int) *Board {
	b := &Board{Width: width, Height: height, tiles: make(map[Point]*Tile, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			b.tiles[p] = &Tile{Pos: p}
		}
	}
	return b
}

// Tile returns the tile at p, or nil when p is off the board.
func (b *Board) Tile(p Point) *Tile {
	return b.tiles[p]
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}
