// Package basin finds the fastest way through a valley whose interior is
// swept by blizzards. Blizzards move one cell per minute in a fixed direction
// and wrap to the opposite interior edge, so their positions are a pure
// function of the elapsed time; the search expands every reachable position
// minute by minute.
package basin

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/advent-sim/internal/core"
)

var (
	// ErrBadCell is returned for characters other than # . ^ v < >.
	ErrBadCell = errors.New("basin: bad cell")

	// ErrTooSmall is returned when the board has no interior.
	ErrTooSmall = errors.New("basin: board too small")

	// ErrNoStart is returned when the top wall has no single gap.
	ErrNoStart = errors.New("basin: top wall must have exactly one gap")

	// ErrNoGoal is returned when the bottom wall has no single gap.
	ErrNoGoal = errors.New("basin: bottom wall must have exactly one gap")

	// ErrBlizzardOutside is returned for a blizzard outside the interior.
	ErrBlizzardOutside = errors.New("basin: blizzard outside the interior")
)

// Cell is the static kind of a board cell.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Board is the immutable valley layout: walls, the open interior and the two
// gaps in the boundary that serve as start and goal.
type Board struct {
	cells    *core.Grid[Cell]
	interior core.Rect
	start    core.Point
	goal     core.Point
}

// W returns the board width including walls.
func (b *Board) W() int { return b.cells.W() }

// H returns the board height including walls.
func (b *Board) H() int { return b.cells.H() }

// Interior returns the region blizzards move in.
func (b *Board) Interior() core.Rect { return b.interior }

// Start returns the gap in the top wall.
func (b *Board) Start() core.Point { return b.start }

// Goal returns the gap in the bottom wall.
func (b *Board) Goal() core.Point { return b.goal }

// Cell returns the cell kind at p; out-of-bounds positions read as walls.
func (b *Board) Cell(p core.Point) Cell {
	c, ok := b.cells.Get(p)
	if !ok {
		return Wall
	}
	return c
}

// Walkable reports whether the expedition may stand at p, ignoring blizzards.
func (b *Board) Walkable(p core.Point) bool {
	return b.Cell(p) == Open
}

// Valley is a parsed puzzle input: the board plus the blizzards at minute 0.
type Valley struct {
	Board     *Board
	Blizzards []Blizzard
}

// Parse reads a valley map. Arrow cells are open cells holding a blizzard.
func Parse(text string) (*Valley, error) {
	var blizzards []Blizzard
	cells, err := core.ParseGrid(text, func(p core.Point, r rune) (Cell, error) {
		switch r {
		case '#':
			return Wall, nil
		case '.':
			return Open, nil
		}
		if d, ok := core.ParseDir(r); ok {
			blizzards = append(blizzards, Blizzard{Pos: p, Dir: d})
			return Open, nil
		}
		return Wall, fmt.Errorf("%w %q", ErrBadCell, r)
	})
	if err != nil {
		return nil, fmt.Errorf("basin: %w", err)
	}
	if cells.W() < 3 || cells.H() < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, cells.W(), cells.H())
	}

	start, ok := singleGap(cells, 0)
	if !ok {
		return nil, ErrNoStart
	}
	goal, ok := singleGap(cells, cells.H()-1)
	if !ok {
		return nil, ErrNoGoal
	}

	board := &Board{
		cells:    cells,
		interior: core.NewRect(1, 1, cells.W()-2, cells.H()-2),
		start:    start,
		goal:     goal,
	}
	for _, bz := range blizzards {
		if !board.interior.Contains(bz.Pos) {
			return nil, fmt.Errorf("%w at %v", ErrBlizzardOutside, bz.Pos)
		}
	}

	return &Valley{Board: board, Blizzards: blizzards}, nil
}

// singleGap returns the only open cell of row y.
func singleGap(cells *core.Grid[Cell], y int) (core.Point, bool) {
	var gap core.Point
	found := 0
	for x, c := range cells.Row(y) {
		if c == Open {
			gap = core.Pt(x, y)
			found++
		}
	}
	return gap, found == 1
}
