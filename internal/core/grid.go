package core

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrEmptyGrid is returned when grid text has no rows.
	ErrEmptyGrid = errors.New("core: empty grid")

	// ErrRagged is returned when grid rows have different lengths.
	ErrRagged = errors.New("core: grid is not rectangular")
)

// Grid is a fixed-size rectangular grid stored in row-major order
// (index = y*W + x). Lookups outside the grid report absence and never wrap.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// NewGrid creates a w×h grid filled with the zero value of T.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
}

// W returns the grid width.
func (g *Grid[T]) W() int { return g.w }

// H returns the grid height.
func (g *Grid[T]) H() int { return g.h }

// Bounds returns the grid extent as a rectangle anchored at the origin.
func (g *Grid[T]) Bounds() Rect {
	return NewRect(0, 0, g.w, g.h)
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Get returns the value at p, or false when p is out of bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.w+p.X], true
}

// At returns the value at p, or the zero value when p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	v, _ := g.Get(p)
	return v
}

// Set stores v at p. Out-of-bounds writes are ignored.
func (g *Grid[T]) Set(p Point, v T) {
	if g.InBounds(p) {
		g.cells[p.Y*g.w+p.X] = v
	}
}

// Row returns row y as a slice sharing the grid storage, or nil if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.h {
		return nil
	}
	return g.cells[y*g.w : (y+1)*g.w]
}

// Points yields every coordinate in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range g.h {
			for x := range g.w {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// ParseGrid builds a grid from newline-separated text, converting each rune
// with cell. Trailing blank lines, carriage returns and trailing spaces or
// tabs on each line are ignored.
func ParseGrid[T any](text string, cell func(p Point, r rune) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n \t"), "\n")
	w := len([]rune(strings.TrimRight(lines[0], " \t")))
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	g := NewGrid[T](w, len(lines))
	for y, line := range lines {
		runes := []rune(strings.TrimRight(line, " \t"))
		if len(runes) != w {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(runes), w, ErrRagged)
		}
		for x, r := range runes {
			p := Pt(x, y)
			v, err := cell(p, r)
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", p, err)
			}
			g.Set(p, v)
		}
	}
	return g, nil
}
