// Package tower simulates rocks falling into a narrow chamber while jets of
// gas push them sideways, and extrapolates the tower height for piece counts
// far beyond what can be simulated by detecting a recurring surface state.
//
// Coordinates inside the chamber have X growing right from the left wall
// (0..Width-1) and Y growing upward from the floor (row 0 rests on it).
package tower

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/advent-sim/internal/core"
)

// Width is the fixed chamber width in cells.
const Width = 7

// Spawn offsets: a new piece's left edge is two cells from the left wall and
// its bottom edge is three empty rows above the tower top.
const (
	spawnLeft = 2
	spawnGap  = 3
)

// ErrUnknownShape is returned for shape names outside the catalog.
var ErrUnknownShape = errors.New("tower: unknown shape")

// ShapeKind is one of the five rock forms.
type ShapeKind int

const (
	HorizontalLine ShapeKind = iota
	Cross
	Angle
	VerticalLine
	Square
)

// shapeCells holds each form's occupied cells relative to its bottom-left corner.
var shapeCells = [...][]core.Point{
	HorizontalLine: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	Cross:          {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	Angle:          {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	VerticalLine:   {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	Square:         {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

var shapeNames = [...]string{
	HorizontalLine: "horizontal",
	Cross:          "cross",
	Angle:          "angle",
	VerticalLine:   "vertical",
	Square:         "square",
}

// Cells returns the form's offsets. The slice must not be modified.
func (k ShapeKind) Cells() []core.Point {
	if k < HorizontalLine || k > Square {
		return nil
	}
	return shapeCells[k]
}

func (k ShapeKind) String() string {
	if k < HorizontalLine || k > Square {
		return fmt.Sprintf("shape(%d)", int(k))
	}
	return shapeNames[k]
}

// DefaultShapes returns the canonical spawn order.
func DefaultShapes() []ShapeKind {
	return []ShapeKind{HorizontalLine, Cross, Angle, VerticalLine, Square}
}

// ParseShapeKind maps a catalog name (e.g. "cross") to its kind.
func ParseShapeKind(name string) (ShapeKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range shapeNames {
		if n == name {
			return ShapeKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ParseShapes maps a list of catalog names to a spawn order.
func ParseShapes(names []string) ([]ShapeKind, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty shape list", ErrUnknownShape)
	}
	kinds := make([]ShapeKind, len(names))
	for i, n := range names {
		k, err := ParseShapeKind(n)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}

// Piece is a falling rock: a form anchored at its bottom-left corner.
type Piece struct {
	Kind   ShapeKind
	Origin core.Point
}

// Cells returns the chamber cells the piece covers.
func (p Piece) Cells() []core.Point {
	offsets := p.Kind.Cells()
	cells := make([]core.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = p.Origin.Add(o)
	}
	return cells
}

// Covers reports whether the piece occupies c.
func (p Piece) Covers(c core.Point) bool {
	rel := c.Sub(p.Origin)
	for _, o := range p.Kind.Cells() {
		if o == rel {
			return true
		}
	}
	return false
}

// moved returns the piece shifted by delta.
func (p Piece) moved(delta core.Point) Piece {
	return Piece{Kind: p.Kind, Origin: p.Origin.Add(delta)}
}
