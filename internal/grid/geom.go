package grid

import "math"

// Vec2 is a float vector used for facing math; tile coordinates stay integral.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Sub(b Vec2) Vec2    { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64       { return math.Hypot(a.X, a.Y) }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Vec() Vec2         { return Vec2{X: float64(p.X), Y: float64(p.Y)} }
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
