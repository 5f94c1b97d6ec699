package basin

import "github.com/vovakirdan/advent-sim/internal/core"

// Blizzard is a hazard moving one cell per minute in a fixed direction.
type Blizzard struct {
	Pos core.Point
	Dir core.Dir
}

// At returns the blizzard's position after tick minutes, computed in closed
// form by wrapping inside the board interior.
func (bz Blizzard) At(board *Board, tick int) core.Point {
	interior := board.Interior()
	d := bz.Dir.Delta()
	return core.Pt(
		interior.X+core.Mod(bz.Pos.X-interior.X+d.X*tick, interior.W),
		interior.Y+core.Mod(bz.Pos.Y-interior.Y+d.Y*tick, interior.H),
	)
}

// Next returns the blizzard one minute later. Leaving the interior re-enters
// at the opposite interior edge, never through the boundary gaps.
func (bz Blizzard) Next(board *Board) Blizzard {
	interior := board.Interior()
	next := bz.Pos.Step(bz.Dir)
	if !interior.Contains(next) {
		switch bz.Dir {
		case core.DirUp:
			next.Y = interior.Bottom() - 1
		case core.DirDown:
			next.Y = interior.Y
		case core.DirLeft:
			next.X = interior.Right() - 1
		case core.DirRight:
			next.X = interior.X
		}
	}
	return Blizzard{Pos: next, Dir: bz.Dir}
}

// Advance returns every blizzard moved by one minute.
func Advance(board *Board, blizzards []Blizzard) []Blizzard {
	out := make([]Blizzard, len(blizzards))
	for i, bz := range blizzards {
		out[i] = bz.Next(board)
	}
	return out
}
