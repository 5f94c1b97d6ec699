// Package core provides the coordinate, grid and screen primitives shared by
// every puzzle. It has no external dependencies (especially no Bubble Tea) so
// solver logic stays pure and testable.
package core

import "fmt"

// Point is an integer 2D coordinate.
// On screen-oriented grids X grows to the right and Y grows downward.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Step returns the point one cell away in direction d.
func (p Point) Step(d Dir) Point {
	return p.Add(d.Delta())
}

// Manhattan returns the taxicab distance between two points.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Neighbors returns the four orthogonal neighbours in Dirs order.
// Callers are responsible for bounds checks.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range Dirs {
		out[i] = p.Step(d)
	}
	return out
}

// Dir is one of the four orthogonal unit directions.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists the unit directions in clockwise order starting from up.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

var dirDeltas = [4]Point{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Delta returns the unit offset of the direction in screen coordinates.
func (d Dir) Delta() Point {
	if d < DirUp || d > DirLeft {
		return Point{}
	}
	return dirDeltas[d]
}

// Glyph returns the arrow character used in puzzle inputs.
func (d Dir) Glyph() rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '?'
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDir maps an arrow glyph (^ > v <) to a direction.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case '^':
		return DirUp, true
	case '>':
		return DirRight, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	}
	return 0, false
}

// Rect is an axis-aligned rectangle, used for frames and interior bounds.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Mod returns the non-negative remainder of a divided by m (m > 0).
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a/GCD(a, b)*b)
}
