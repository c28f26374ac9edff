package game

import "fmt"

// Point is either an absolute board coordinate or an offset relative to a piece anchor.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// rotations holds the counterclockwise quarter-turn matrices {a, b, c, d}
// mapping (x, y) to (a*x + b*y, c*x + d*y).
var rotations = [4][4]int{
	{1, 0, 0, 1},
	{0, -1, 1, 0},
	{-1, 0, 0, -1},
	{0, 1, -1, 0},
}

// Rotate turns p by k quarter turns counterclockwise about the origin.
// Any k is accepted and reduced modulo 4.
func (p Point) Rotate(k int) Point {
	m := rotations[((k%4)+4)%4]
	return Point{X: m[0]*p.X + m[1]*p.Y, Y: m[2]*p.X + m[3]*p.Y}
}

func Manhattan(p, q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

var orthogonal = [4]Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

var diagonal = [4]Point{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
