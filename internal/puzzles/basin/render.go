package basin

import (
	"fmt"

	"github.com/vovakirdan/advent-sim/internal/core"
)

const title = " Blizzard Basin "

// Render draws the valley at the search's current minute with a status line.
func (s *Search) Render(dst *core.Screen) {
	s.render(dst, fmt.Sprintf(" minute: %d  frontier: %d", s.tick, len(s.frontier)))
}

// render draws the valley framed below a status line holding fields.
func (s *Search) render(dst *core.Screen, fields string) {
	dst.DrawHUD(0, title, fields)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	board, timeline := s.pf.board, s.pf.timeline
	bounds := board.cells.Bounds()
	left := 1 + max(0, (dst.Width()-2-bounds.W)/2)
	top := 3 + max(0, (dst.Height()-4-bounds.H)/2)
	at := func(p core.Point) (int, int) { return left + p.X, top + p.Y }

	dst.DrawBox(core.NewRect(left-1, top-1, bounds.W+2, bounds.H+2), core.ColorBlue)

	for p := range board.cells.Points() {
		x, y := at(p)
		if board.Cell(p) == Wall {
			dst.SetColored(x, y, '#', core.ColorGray)
			continue
		}
		dst.SetColored(x, y, '.', core.ColorDefault)
	}

	for _, bz := range timeline.Blizzards(s.tick) {
		x, y := at(bz.Pos)
		switch n := timeline.Count(s.tick, bz.Pos); {
		case n > 1:
			dst.SetColored(x, y, rune('0'+n), core.ColorCyan)
		default:
			dst.SetColored(x, y, bz.Dir.Glyph(), core.ColorBlue)
		}
	}

	x, y := at(s.goal)
	dst.SetColored(x, y, 'G', core.ColorYellow)
	for _, p := range s.frontier {
		x, y := at(p)
		dst.SetColored(x, y, 'E', core.ColorGreen)
	}

	if s.err != nil {
		dst.DrawTextColored(1, dst.Height()-1, s.err.Error(), core.ColorRed)
	}
}
